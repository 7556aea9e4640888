package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/planfit/planfit/internal/plan"
	"github.com/planfit/planfit/internal/testhelpers"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	return &application{
		logger:      logger,
		planService: plan.NewService(logger),
		corsOrigins: []string{"*"},
	}
}

// do sends a request through the full middleware chain and decodes the JSON
// response body into a generic map.
func do(t *testing.T, app *application, method, target, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)

	decoded := make(map[string]any)
	if err := json.NewDecoder(rr.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return rr.Code, decoded
}

const validProfileBody = `{
	"age": 45,
	"height": 170,
	"weight": 75,
	"gender": "male",
	"fitness_level": "intermediate",
	"health_conditions": ["knee"],
	"goal": "weight_loss",
	"preferred_days": 5
}`

func TestHealthGET(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodGet, "/api/health", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["status"] != "healthy" {
		t.Errorf(`body["status"] = %v, want "healthy"`, body["status"])
	}
	if body["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}

func TestExercisesGET(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodGet, "/api/exercises", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	all, ok := body["exercises"].(map[string]any)
	if !ok {
		t.Fatalf(`body["exercises"] = %T, want object`, body["exercises"])
	}
	if len(all) != 4 {
		t.Errorf("len(exercises) = %d, want 4", len(all))
	}

	// A valid type filter narrows the response to a flat list.
	status, body = do(t, app, http.MethodGet, "/api/exercises?type=Cardio", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	cardio, ok := body["exercises"].([]any)
	if !ok {
		t.Fatalf(`filtered body["exercises"] = %T, want list`, body["exercises"])
	}
	if len(cardio) == 0 {
		t.Error("filtered exercises empty")
	}

	// An unknown type falls back to the full mapping.
	status, body = do(t, app, http.MethodGet, "/api/exercises?type=Pilates", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if _, ok := body["exercises"].(map[string]any); !ok {
		t.Errorf(`unknown-type body["exercises"] = %T, want object`, body["exercises"])
	}
}

func TestCatalogEndpoints(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodGet, "/api/workout-types", "")
	if status != http.StatusOK {
		t.Fatalf("workout-types status = %d", status)
	}
	if types, ok := body["workout_types"].([]any); !ok || len(types) != 4 {
		t.Errorf(`body["workout_types"] = %v`, body["workout_types"])
	}

	status, body = do(t, app, http.MethodGet, "/api/equipment", "")
	if status != http.StatusOK {
		t.Fatalf("equipment status = %d", status)
	}
	if mapping, ok := body["equipment_mapping"].(map[string]any); !ok || len(mapping) == 0 {
		t.Errorf(`body["equipment_mapping"] = %v`, body["equipment_mapping"])
	}

	status, body = do(t, app, http.MethodGet, "/api/goals", "")
	if status != http.StatusOK {
		t.Fatalf("goals status = %d", status)
	}
	if goals, ok := body["goals"].([]any); !ok || len(goals) != 4 {
		t.Errorf(`body["goals"] = %v`, body["goals"])
	}
}

func TestGeneratePlanPOST(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodPost, "/api/generate-plan", validProfileBody)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %v", status, body)
	}

	workoutPlan, ok := body["workout_plan"].(map[string]any)
	if !ok {
		t.Fatalf(`body["workout_plan"] = %T, want object`, body["workout_plan"])
	}
	weeks, ok := workoutPlan["weeks"].(map[string]any)
	if !ok {
		t.Fatalf(`workout_plan["weeks"] = %T, want object`, workoutPlan["weeks"])
	}
	if len(weeks) != 4 {
		t.Errorf("len(weeks) = %d, want 4", len(weeks))
	}
	if _, ok := weeks["Week 1"]; !ok {
		t.Error(`missing "Week 1"`)
	}
}

func TestGeneratePlanPOSTMissingFields(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodPost, "/api/generate-plan", `{"age": 45}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != true {
		t.Errorf(`body["error"] = %v, want true`, body["error"])
	}
	message, _ := body["message"].(string)
	if !strings.HasPrefix(message, "Missing required fields: ") {
		t.Errorf("message = %q", message)
	}
}

func TestGeneratePlanPOSTEmptyGoalDefaults(t *testing.T) {
	app := newTestApplication(t)

	body := strings.Replace(validProfileBody, `"weight_loss"`, `""`, 1)
	status, decoded := do(t, app, http.MethodPost, "/api/generate-plan", body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %v", status, decoded)
	}

	workoutPlan, ok := decoded["workout_plan"].(map[string]any)
	if !ok {
		t.Fatalf(`body["workout_plan"] = %T, want object`, decoded["workout_plan"])
	}
	profile, ok := workoutPlan["user_profile"].(map[string]any)
	if !ok {
		t.Fatalf(`workout_plan["user_profile"] = %T, want object`, workoutPlan["user_profile"])
	}
	if profile["goal"] != "Weight Loss" {
		t.Errorf(`profile["goal"] = %v, want "Weight Loss"`, profile["goal"])
	}
}

func TestGeneratePlanPOSTUnknownGoal(t *testing.T) {
	app := newTestApplication(t)

	body := strings.Replace(validProfileBody, `"weight_loss"`, `"Marathon Prep"`, 1)
	status, decoded := do(t, app, http.MethodPost, "/api/generate-plan", body)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %v", status, decoded)
	}
}

func TestCalculateDifficultyPOST(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodPost, "/api/calculate-difficulty", validProfileBody)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	// Intermediate with one condition: 1.1 * 0.9.
	modifier, ok := body["difficulty_modifier"].(float64)
	if !ok {
		t.Fatalf(`body["difficulty_modifier"] = %T`, body["difficulty_modifier"])
	}
	if modifier < 0.989 || modifier > 0.991 {
		t.Errorf("difficulty_modifier = %v, want 0.99", modifier)
	}
}

func TestDailyChallengePOST(t *testing.T) {
	app := newTestApplication(t)

	body := strings.TrimSuffix(validProfileBody, "\n}") + `, "date": "2025-03-15"}`
	status, first := do(t, app, http.MethodPost, "/api/daily-challenge", body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %v", status, first)
	}

	challenge, ok := first["daily_challenge"].(map[string]any)
	if !ok {
		t.Fatalf(`body["daily_challenge"] = %T, want object`, first["daily_challenge"])
	}
	if challenge["date"] != "2025-03-15" {
		t.Errorf(`challenge["date"] = %v`, challenge["date"])
	}
	if challenge["day_of_week"] != "Saturday" {
		t.Errorf(`challenge["day_of_week"] = %v`, challenge["day_of_week"])
	}

	// The same request yields a byte-identical challenge.
	_, second := do(t, app, http.MethodPost, "/api/daily-challenge", body)
	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("repeated challenge differs:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestDailyChallengePOSTBadDate(t *testing.T) {
	app := newTestApplication(t)

	body := strings.TrimSuffix(validProfileBody, "\n}") + `, "date": "next tuesday"}`
	status, _ := do(t, app, http.MethodPost, "/api/daily-challenge", body)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestDailyChallengesBatchPOST(t *testing.T) {
	app := newTestApplication(t)

	body := strings.TrimSuffix(validProfileBody, "\n}") +
		`, "start_date": "2025-06-01", "end_date": "2025-06-07"}`
	status, decoded := do(t, app, http.MethodPost, "/api/daily-challenges-batch", body)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %v", status, decoded)
	}

	challenges, ok := decoded["daily_challenges"].([]any)
	if !ok {
		t.Fatalf(`body["daily_challenges"] = %T, want list`, decoded["daily_challenges"])
	}
	if len(challenges) != 7 {
		t.Errorf("len(daily_challenges) = %d, want 7", len(challenges))
	}
	if count, _ := decoded["count"].(float64); int(count) != 7 {
		t.Errorf("count = %v, want 7", decoded["count"])
	}
}

func TestDailyChallengesBatchPOSTValidation(t *testing.T) {
	app := newTestApplication(t)

	// Missing dates.
	status, decoded := do(t, app, http.MethodPost, "/api/daily-challenges-batch", validProfileBody)
	if status != http.StatusBadRequest {
		t.Fatalf("missing dates status = %d, want 400", status)
	}
	if decoded["message"] != "Missing required fields: start_date and end_date" {
		t.Errorf("message = %v", decoded["message"])
	}

	// Reversed range.
	body := strings.TrimSuffix(validProfileBody, "\n}") +
		`, "start_date": "2025-06-07", "end_date": "2025-06-01"}`
	status, decoded = do(t, app, http.MethodPost, "/api/daily-challenges-batch", body)
	if status != http.StatusBadRequest {
		t.Fatalf("reversed range status = %d, want 400", status)
	}
	if decoded["message"] != "Start date must be before or equal to end date" {
		t.Errorf("message = %v", decoded["message"])
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodGet, "/api/nonexistent", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["error"] != true {
		t.Errorf(`body["error"] = %v, want true`, body["error"])
	}

	status, _ = do(t, app, http.MethodDelete, "/api/health", "")
	if status != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", status)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	app := newTestApplication(t)

	status, body := do(t, app, http.MethodPost, "/api/generate-plan", `{"age":`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != true {
		t.Errorf(`body["error"] = %v, want true`, body["error"])
	}
}
