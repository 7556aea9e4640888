package plan

import (
	"math/rand/v2"
	"slices"
)

// selectCategory draws a workout category from the goal's split: walk the
// shares in order and pick the first whose cumulative weight reaches the draw.
func selectCategory(rng *rand.Rand, split []SplitShare) Category {
	r := rng.Float64()
	cumulative := 0.0
	for _, share := range split {
		cumulative += share.Share
		if r <= cumulative {
			return share.Category
		}
	}
	return split[0].Category
}

// fallbackExercise substitutes for a category whose pool was emptied by
// health-condition filtering.
func fallbackExercise(category Category) string {
	if category == CategoryCardio {
		return "Low-Impact Walking"
	}
	return "Bodyweight Isometric Holds"
}

// planExerciseBase is the per-level exercise count before volume scaling.
var planExerciseBase = map[FitnessLevel]int{
	LevelBeginner:     4,
	LevelIntermediate: 5,
	LevelAdvanced:     6,
}

// planExerciseCount scales the level's base count by the week's volume
// multiplier, truncating toward zero.
func planExerciseCount(level FitnessLevel, progression Progression) int {
	base, ok := planExerciseBase[level]
	if !ok {
		base = 3
	}
	return int(float64(base) * progression.VolumeMultiplier)
}

// challengeExerciseBase is the per-level exercise count for daily challenges.
// Challenges are single standalone workouts, so no volume scaling applies.
var challengeExerciseBase = map[FitnessLevel]int{
	LevelBeginner:     2,
	LevelIntermediate: 3,
	LevelAdvanced:     4,
}

func challengeExerciseCount(level FitnessLevel) int {
	base, ok := challengeExerciseBase[level]
	if !ok {
		base = 2
	}
	return base
}

// sampleExercises picks count distinct exercises from pool, or the whole pool
// when it is smaller. The pool is not mutated.
func sampleExercises(rng *rand.Rand, pool []string, count int) []string {
	shuffled := slices.Clone(pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
