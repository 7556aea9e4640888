package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/planfit/planfit/internal/plan"
)

// profileRequest is the loosely-typed request body shared by every profile
// endpoint. Clients send fields in varying shapes, so the numeric and list
// fields are decoded as any and coerced in normalizeProfile.
type profileRequest struct {
	Age              any     `json:"age"`
	Height           any     `json:"height"`
	Weight           any     `json:"weight"`
	Gender           *string `json:"gender"`
	FitnessLevel     *string `json:"fitness_level"`
	HealthConditions any     `json:"health_conditions"`
	Goal             *string `json:"goal"`
	PreferredDays    any     `json:"preferred_days"`

	Weeks     *int   `json:"weeks"`
	Date      string `json:"date"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// normalizeProfile validates the request and coerces it into a Profile.
// A non-empty second return value is the client-facing validation error.
func normalizeProfile(req profileRequest) (plan.Profile, string) {
	var missing []string
	for _, field := range []struct {
		name string
		set  bool
	}{
		{name: "age", set: req.Age != nil},
		{name: "height", set: req.Height != nil},
		{name: "weight", set: req.Weight != nil},
		{name: "gender", set: req.Gender != nil},
		{name: "fitness_level", set: req.FitnessLevel != nil},
		{name: "goal", set: req.Goal != nil},
		{name: "preferred_days", set: req.PreferredDays != nil},
	} {
		if !field.set {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return plan.Profile{}, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	age, ageOK := toInt(req.Age)
	height, heightOK := toFloat(req.Height)
	weight, weightOK := toFloat(req.Weight)
	if !ageOK || !heightOK || !weightOK {
		return plan.Profile{}, "Age must be an integer, height and weight must be numeric"
	}

	return plan.Profile{
		Age:              age,
		Height:           height,
		Weight:           weight,
		Gender:           *req.Gender,
		FitnessLevel:     normalizeFitnessLevel(*req.FitnessLevel),
		HealthConditions: normalizeHealthConditions(req.HealthConditions),
		Goal:             normalizeGoal(*req.Goal),
		PreferredDays:    normalizePreferredDays(req.PreferredDays),
	}, ""
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var fitnessLevels = map[string]plan.FitnessLevel{
	"beginner":     plan.LevelBeginner,
	"intermediate": plan.LevelIntermediate,
	"advanced":     plan.LevelAdvanced,
}

// normalizeFitnessLevel is case-insensitive and defaults to Intermediate.
func normalizeFitnessLevel(level string) plan.FitnessLevel {
	if normalized, ok := fitnessLevels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return normalized
	}
	return plan.LevelIntermediate
}

var healthConditions = map[string]plan.HealthCondition{
	"knee pain":       plan.ConditionKneePain,
	"knee":            plan.ConditionKneePain,
	"back pain":       plan.ConditionBackPain,
	"back":            plan.ConditionBackPain,
	"heart condition": plan.ConditionHeartCondition,
	"heart":           plan.ConditionHeartCondition,
	"shoulder injury": plan.ConditionShoulderInjury,
	"shoulder":        plan.ConditionShoulderInjury,
}

// normalizeHealthConditions accepts a single string or a list of strings and
// silently drops anything it cannot match.
func normalizeHealthConditions(value any) []plan.HealthCondition {
	var raw []string
	switch v := value.(type) {
	case string:
		raw = []string{v}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	var conditions []plan.HealthCondition
	for _, item := range raw {
		if condition, ok := healthConditions[strings.ToLower(strings.TrimSpace(item))]; ok {
			conditions = append(conditions, condition)
		}
	}
	return conditions
}

var goalAliases = map[string]string{
	"weight_loss": "Weight Loss",
	"weightloss":  "Weight Loss",
	"weight loss": "Weight Loss",
	"muscle_gain": "Muscle Gain",
	"musclegain":  "Muscle Gain",
	"muscle gain": "Muscle Gain",
	"endurance":   "Endurance",
	"flexibility": "Flexibility",
}

// normalizeGoal maps common aliases to canonical goal names. An empty goal
// defaults to Weight Loss; other unrecognized goals pass through untouched so
// the engine can decide how to treat them.
func normalizeGoal(goal string) string {
	trimmed := strings.TrimSpace(goal)
	if trimmed == "" {
		return "Weight Loss"
	}
	if canonical, ok := goalAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return goal
}

// normalizePreferredDays accepts an integer, a numeric string or a list of
// weekdays, defaulting to three days a week.
func normalizePreferredDays(value any) int {
	switch v := value.(type) {
	case []any:
		return len(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 3
}
