package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/health", app.healthGET).Methods(http.MethodGet)

	router.HandleFunc("/api/exercises", app.exercisesGET).Methods(http.MethodGet)
	router.HandleFunc("/api/workout-types", app.workoutTypesGET).Methods(http.MethodGet)
	router.HandleFunc("/api/equipment", app.equipmentGET).Methods(http.MethodGet)
	router.HandleFunc("/api/goals", app.goalsGET).Methods(http.MethodGet)

	router.HandleFunc("/api/generate-plan", app.generatePlanPOST).Methods(http.MethodPost)
	router.HandleFunc("/api/calculate-difficulty", app.calculateDifficultyPOST).Methods(http.MethodPost)
	router.HandleFunc("/api/daily-challenge", app.dailyChallengePOST).Methods(http.MethodPost)
	router.HandleFunc("/api/daily-challenges-batch", app.dailyChallengesBatchPOST).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(app.notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(app.methodNotAllowed)
	router.Use(app.logRequest)

	c := cors.New(cors.Options{
		AllowedOrigins: app.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})

	return app.recoverPanic(secureHeaders(c.Handler(router)))
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
