package plan

import "slices"

// Catalog holds the static exercise reference data: the exercise list per
// workout category, the exercises excluded per health condition, and the
// equipment each exercise needs. It is built once at startup and is safe for
// unrestricted concurrent reads.
type Catalog struct {
	categories   []Category
	exercises    map[Category][]string
	restrictions map[HealthCondition][]string
	equipment    map[string][]string
}

// NewCatalog builds the default exercise catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		categories: []Category{CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryHIIT},
		exercises: map[Category][]string{
			CategoryCardio: {
				"Treadmill", "Cycling", "Swimming", "Rowing", "Elliptical",
				"Jump Rope", "Running", "Stair Climbing", "Boxing", "Kickboxing",
				"Dancing", "Mountain Climbers", "Burpees", "High Knees",
			},
			CategoryStrength: {
				"Squats", "Deadlifts", "Bench Press", "Shoulder Press",
				"Pull-ups", "Push-ups", "Lunges", "Dumbbell Rows",
				"Leg Press", "Tricep Dips", "Bicep Curls", "Plank Holds",
				"Romanian Deadlifts", "Hip Thrusts", "Face Pulls",
			},
			CategoryFlexibility: {
				"Yoga", "Pilates", "Dynamic Stretching", "Static Stretching",
				"Foam Rolling", "Mobility Work", "Cat-Cow Stretch",
				"Downward Dog", "Child's Pose", "Hamstring Stretch",
				"Hip Flexor Stretch", "Shoulder Rolls", "Spine Twists",
			},
			CategoryHIIT: {
				"Burpee Intervals", "Sprint Intervals", "Jump Rope Intervals",
				"Mountain Climber Intervals", "Squat Jumps", "Box Jumps",
				"Battle Ropes", "Kettlebell Swings", "Medicine Ball Slams",
			},
		},
		restrictions: map[HealthCondition][]string{
			ConditionKneePain: {
				"Squats", "Lunges", "Box Jumps", "Jump Rope",
				"Stair Climbing", "Burpees", "Mountain Climbers",
			},
			ConditionBackPain: {
				"Deadlifts", "Romanian Deadlifts", "Shoulder Press",
				"Bench Press", "Good Mornings",
			},
			ConditionHeartCondition: {
				"HIIT", "Sprint Intervals", "Burpee Intervals",
				"Box Jumps", "Battle Ropes",
			},
			ConditionShoulderInjury: {
				"Pull-ups", "Shoulder Press", "Bench Press",
				"Face Pulls", "Push-ups",
			},
		},
		equipment: map[string][]string{
			"Treadmill":         {"Treadmill"},
			"Cycling":           {"Stationary Bike"},
			"Yoga":              {"Yoga Mat"},
			"Kettlebell Swings": {"Kettlebell"},
			"Box Jumps":         {"Plyo Box"},
			"Deadlifts":         {"Barbell", "Weight Plates"},
			"Squats":            {"Barbell", "Weight Plates"},
			"Swimming":          {"Pool Access"},
			"Rowing":            {"Rowing Machine"},
		},
	}
}

// Categories returns the workout categories in catalog order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Exercises returns the exercise list for a category.
func (c *Catalog) Exercises(category Category) ([]string, bool) {
	exercises, ok := c.exercises[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(exercises), true
}

// AllExercises returns the full category to exercise-list mapping.
func (c *Catalog) AllExercises() map[Category][]string {
	all := make(map[Category][]string, len(c.exercises))
	for category, exercises := range c.exercises {
		all[category] = slices.Clone(exercises)
	}
	return all
}

// EquipmentMap returns the exercise to required-equipment mapping.
func (c *Catalog) EquipmentMap() map[string][]string {
	all := make(map[string][]string, len(c.equipment))
	for exercise, equipment := range c.equipment {
		all[exercise] = slices.Clone(equipment)
	}
	return all
}

// eligibleExercises returns the category's exercises with every exercise
// excluded by one of the user's health conditions removed. The returned slice
// is always a fresh copy and may be empty; callers substitute a fallback.
func (c *Catalog) eligibleExercises(category Category, conditions []HealthCondition) []string {
	pool := slices.Clone(c.exercises[category])
	for _, condition := range conditions {
		restricted := c.restrictions[condition]
		pool = slices.DeleteFunc(pool, func(exercise string) bool {
			return slices.Contains(restricted, exercise)
		})
	}
	return pool
}

// requiredEquipment unions the equipment lists for the given exercises.
// Exercises without an equipment mapping contribute nothing. The result is
// sorted so equal sets compare equal.
func (c *Catalog) requiredEquipment(exercises []string) []string {
	seen := make(map[string]struct{})
	equipment := []string{}
	for _, exercise := range exercises {
		for _, item := range c.equipment[exercise] {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			equipment = append(equipment, item)
		}
	}
	slices.Sort(equipment)
	return equipment
}
