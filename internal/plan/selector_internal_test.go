package plan

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestSelectCategoryCoversSplit(t *testing.T) {
	table := NewPolicyTable()
	for _, goal := range table.Goals() {
		t.Run(goal, func(t *testing.T) {
			policy, ok := table.Policy(goal)
			if !ok {
				t.Fatalf("Policy(%q) missing", goal)
			}

			rng := rand.New(rand.NewPCG(1, 2))
			seen := make(map[Category]int)
			for range 1000 {
				seen[selectCategory(rng, policy.Split)]++
			}

			for _, share := range policy.Split {
				if seen[share.Category] == 0 {
					t.Errorf("category %s never drawn", share.Category)
				}
			}
			if len(seen) != len(policy.Split) {
				t.Errorf("drew %d categories, split has %d", len(seen), len(policy.Split))
			}
		})
	}
}

func TestEligibleExercisesFiltersRestrictions(t *testing.T) {
	catalog := NewCatalog()

	pool := catalog.eligibleExercises(CategoryStrength, []HealthCondition{ConditionShoulderInjury})

	excluded := []string{"Pull-ups", "Shoulder Press", "Bench Press", "Face Pulls", "Push-ups"}
	for _, name := range excluded {
		if slices.Contains(pool, name) {
			t.Errorf("pool contains restricted exercise %q", name)
		}
	}
	if want := 15 - len(excluded); len(pool) != want {
		t.Errorf("len(pool) = %d, want %d", len(pool), want)
	}
}

func TestEligibleExercisesDoesNotMutateCatalog(t *testing.T) {
	catalog := NewCatalog()

	before, _ := catalog.Exercises(CategoryStrength)
	catalog.eligibleExercises(CategoryStrength, []HealthCondition{ConditionShoulderInjury, ConditionBackPain})
	after, _ := catalog.Exercises(CategoryStrength)

	if !slices.Equal(before, after) {
		t.Errorf("catalog mutated by filtering: before %v, after %v", before, after)
	}
}

func TestFallbackExercise(t *testing.T) {
	if got := fallbackExercise(CategoryCardio); got != "Low-Impact Walking" {
		t.Errorf("fallbackExercise(Cardio) = %q", got)
	}
	if got := fallbackExercise(CategoryStrength); got != "Bodyweight Isometric Holds" {
		t.Errorf("fallbackExercise(Strength) = %q", got)
	}
}

func TestPlanExerciseCount(t *testing.T) {
	testCases := []struct {
		name   string
		level  FitnessLevel
		volume float64
		want   int
	}{
		{name: "beginner week one", level: LevelBeginner, volume: 0.8, want: 3},
		{name: "intermediate week one", level: LevelIntermediate, volume: 1.1, want: 5},
		{name: "advanced week one", level: LevelAdvanced, volume: 1.4, want: 8},
		{name: "unrecognized level", level: "Expert", volume: 1.0, want: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := planExerciseCount(tc.level, Progression{VolumeMultiplier: tc.volume})
			if got != tc.want {
				t.Errorf("planExerciseCount() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChallengeExerciseCount(t *testing.T) {
	if got := challengeExerciseCount(LevelBeginner); got != 2 {
		t.Errorf("challengeExerciseCount(Beginner) = %d, want 2", got)
	}
	if got := challengeExerciseCount(LevelAdvanced); got != 4 {
		t.Errorf("challengeExerciseCount(Advanced) = %d, want 4", got)
	}
	if got := challengeExerciseCount("Expert"); got != 2 {
		t.Errorf("challengeExerciseCount(unknown) = %d, want 2", got)
	}
}

func TestSampleExercises(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewPCG(7, 7))

	sampled := sampleExercises(rng, pool, 3)
	if len(sampled) != 3 {
		t.Fatalf("len(sampled) = %d, want 3", len(sampled))
	}
	seen := make(map[string]bool)
	for _, name := range sampled {
		if seen[name] {
			t.Errorf("duplicate sample %q", name)
		}
		seen[name] = true
		if !slices.Contains(pool, name) {
			t.Errorf("sample %q not in pool", name)
		}
	}

	// Oversized requests clamp to the pool.
	all := sampleExercises(rng, pool, 10)
	if len(all) != len(pool) {
		t.Errorf("len(all) = %d, want %d", len(all), len(pool))
	}

	// The pool order is untouched.
	if !slices.Equal(pool, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("pool mutated: %v", pool)
	}
}
