package main

import (
	"net/http"

	"github.com/planfit/planfit/internal/plan"
)

// exercisesGET lists all exercises, or just one category's when a valid
// ?type= query parameter is given.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	if exerciseType := r.URL.Query().Get("type"); exerciseType != "" {
		if exercises, ok := app.planService.ExercisesByType(plan.Category(exerciseType)); ok {
			app.writeJSON(w, r, http.StatusOK, map[string]any{"exercises": exercises})
			return
		}
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"exercises": app.planService.Exercises()})
}

func (app *application) workoutTypesGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{"workout_types": app.planService.WorkoutTypes()})
}

func (app *application) equipmentGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{"equipment_mapping": app.planService.EquipmentMap()})
}

func (app *application) goalsGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{"goals": app.planService.Goals()})
}
