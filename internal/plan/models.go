package plan

import "time"

// FitnessLevel grades how experienced a user is.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelAdvanced     FitnessLevel = "Advanced"
)

// HealthCondition restricts which exercises a user may be given.
type HealthCondition string

const (
	ConditionKneePain       HealthCondition = "Knee Pain"
	ConditionBackPain       HealthCondition = "Back Pain"
	ConditionHeartCondition HealthCondition = "Heart Condition"
	ConditionShoulderInjury HealthCondition = "Shoulder Injury"
)

// Category represents a workout type such as Cardio or Strength.
type Category string

const (
	CategoryCardio      Category = "Cardio"
	CategoryStrength    Category = "Strength"
	CategoryFlexibility Category = "Flexibility"
	CategoryHIIT        Category = "HIIT"
)

// Profile is the validated user profile supplied by the HTTP adapter.
// The engine never mutates it.
type Profile struct {
	Age              int               `json:"age"`
	Height           float64           `json:"height"`
	Weight           float64           `json:"weight"`
	Gender           string            `json:"gender"`
	FitnessLevel     FitnessLevel      `json:"fitness_level"`
	HealthConditions []HealthCondition `json:"health_conditions"`
	Goal             string            `json:"goal"`
	PreferredDays    int               `json:"preferred_days"`
}

// Progression is the week-dependent scaling applied to workout volume and
// intensity, scoped to one (user, week) pair.
type Progression struct {
	VolumeMultiplier    float64 `json:"volume_multiplier"`
	IntensityMultiplier float64 `json:"intensity_multiplier"`
	ComplexityLevel     int     `json:"complexity_level"`
}

// ExerciseEntry is one formatted exercise. It is a sealed sum type with a
// variant per workout category: [StrengthExercise], [HIITExercise] and
// [TimedExercise].
type ExerciseEntry interface {
	isExerciseEntry()
}

// StrengthExercise is the sets-and-reps variant used for Strength workouts.
type StrengthExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
	Rest string `json:"rest"`
}

func (StrengthExercise) isExerciseEntry() {}

// HIITExercise is the interval variant used for HIIT workouts.
type HIITExercise struct {
	Name      string `json:"name"`
	Intervals int    `json:"intervals"`
	WorkTime  string `json:"work_time"`
	RestTime  string `json:"rest_time"`
}

func (HIITExercise) isExerciseEntry() {}

// TimedExercise is the duration variant used for Cardio, Flexibility and any
// other timed workout.
type TimedExercise struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

func (TimedExercise) isExerciseEntry() {}

// Workout is one day's fully specified workout.
type Workout struct {
	Type              Category        `json:"type"`
	Intensity         string          `json:"intensity"`
	Exercises         []ExerciseEntry `json:"exercises"`
	Duration          string          `json:"duration"`
	RequiredEquipment []string        `json:"required_equipment"`
}

// WeeklyPlan groups one week's workouts with the progression they were
// generated under.
type WeeklyPlan struct {
	Progression Progression `json:"progression_level"`
	Workouts    []Workout   `json:"workouts"`
}

// Plan is a complete multi-week workout plan. It is created fresh per request
// and never mutated after construction.
type Plan struct {
	Profile   Profile               `json:"user_profile"`
	StartDate time.Time             `json:"start_date"`
	Weeks     map[string]WeeklyPlan `json:"weeks"`
}

// DailyChallenge is a single self-contained workout for one calendar date,
// generated deterministically from the user profile and the date.
type DailyChallenge struct {
	Name              string          `json:"name"`
	Date              string          `json:"date"`
	DayOfWeek         string          `json:"day_of_week"`
	Type              Category        `json:"type"`
	Difficulty        string          `json:"difficulty"`
	Exercises         []ExerciseEntry `json:"exercises"`
	Duration          string          `json:"duration"`
	RequiredEquipment []string        `json:"required_equipment"`
}
