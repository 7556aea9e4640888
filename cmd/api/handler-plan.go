package main

import (
	"fmt"
	"net/http"

	"github.com/planfit/planfit/internal/errors"
	"github.com/planfit/planfit/internal/observability"
	"github.com/planfit/planfit/internal/plan"
)

const defaultPlanWeeks = 4

func (app *application) generatePlanPOST(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	profile, problem := normalizeProfile(req)
	if problem != "" {
		app.badRequest(w, r, problem)
		return
	}

	weeks := defaultPlanWeeks
	if req.Weeks != nil {
		weeks = *req.Weeks
	}

	generated, err := app.planService.GeneratePlan(r.Context(), profile, weeks)
	if err != nil {
		if errors.Is(err, plan.ErrUnknownGoal) {
			app.badRequest(w, r, fmt.Sprintf("Failed to generate workout plan: unknown goal %q", profile.Goal))
			return
		}
		app.serverError(w, r, err)
		return
	}
	observability.RecordPlanGenerated(profile.Goal)

	app.writeJSON(w, r, http.StatusOK, map[string]any{"workout_plan": generated})
}

func (app *application) calculateDifficultyPOST(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	profile, problem := normalizeProfile(req)
	if problem != "" {
		app.badRequest(w, r, problem)
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"difficulty_modifier": plan.DifficultyModifier(profile),
	})
}
