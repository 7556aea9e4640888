package plan

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// formatExercise renders one sampled exercise name into the entry variant for
// its category. index, total and totalMinutes drive the per-exercise minute
// split for timed categories.
func formatExercise(name string, category Category, progression Progression, index, total, totalMinutes int) ExerciseEntry {
	switch category {
	case CategoryStrength:
		return StrengthExercise{
			Name: name,
			Sets: int(3 * progression.VolumeMultiplier),
			Reps: int(10 * progression.IntensityMultiplier),
			Rest: "60-90 seconds",
		}
	case CategoryHIIT:
		return HIITExercise{
			Name:      name,
			Intervals: int(6 * progression.VolumeMultiplier),
			WorkTime:  "30 seconds",
			RestTime:  "30 seconds",
		}
	default:
		// Split the session evenly, handing the remainder out one minute at
		// a time from the front so the per-exercise minutes sum to the total.
		minutes := totalMinutes / total
		if index < totalMinutes%total {
			minutes++
		}
		return TimedExercise{
			Name:     name,
			Duration: fmt.Sprintf("%d minutes", minutes),
		}
	}
}

// sessionBaseMinutes is the session length per fitness level before the
// category adjustment.
var sessionBaseMinutes = map[FitnessLevel]int{
	LevelBeginner:     30,
	LevelIntermediate: 45,
	LevelAdvanced:     60,
}

// totalDuration computes a session's length for a category and level. Cardio
// and HIIT sessions run shorter than strength or flexibility work.
func totalDuration(category Category, level FitnessLevel) (string, int) {
	minutes, ok := sessionBaseMinutes[level]
	if !ok {
		minutes = 45
	}
	if category == CategoryCardio || category == CategoryHIIT {
		minutes = int(float64(minutes) * 0.8)
	}
	return fmt.Sprintf("%d minutes", minutes), minutes
}

// seededRand derives a deterministic random source from an arbitrary key.
// Equal keys always yield identical draw sequences.
func seededRand(key string) *rand.Rand {
	sum := sha256.Sum256([]byte(key))
	hi := binary.BigEndian.Uint64(sum[:8])
	lo := binary.BigEndian.Uint64(sum[8:16])
	return rand.New(rand.NewPCG(hi, lo))
}
