package plan

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/planfit/planfit/internal/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownGoal is returned when a plan is requested for a goal the
	// policy table does not recognize.
	ErrUnknownGoal = errors.NewSentinel("unknown fitness goal")

	// ErrInvalidRange is returned when a challenge range starts after it ends.
	ErrInvalidRange = errors.NewSentinel("start date is after end date")
)

// challengeEpoch anchors the day numbering used for challenge progression.
var challengeEpoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxChallengeRangeDays caps how many daily challenges one batch request may
// produce.
const maxChallengeRangeDays = 31

// weekOf converts a 1-based day index into its 1-based week. Division floors
// so that days before the epoch land in week 0 and below instead of being
// pulled toward week 1 by integer truncation.
func weekOf(day int) int {
	d := day - 1
	if d < 0 {
		d -= 6
	}
	return d/7 + 1
}

// Service generates workout plans and daily challenges from the static
// exercise catalog and goal policy table.
type Service struct {
	catalog  *Catalog
	policies *PolicyTable
	logger   *slog.Logger
}

// NewService creates a new plan service.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		catalog:  NewCatalog(),
		policies: NewPolicyTable(),
		logger:   logger,
	}
}

// GeneratePlan builds a multi-week workout plan for the profile. The plan
// honors the profile's preferred training days per week and scales volume and
// intensity week over week.
func (s *Service) GeneratePlan(ctx context.Context, profile Profile, weeks int) (Plan, error) {
	policy, ok := s.policies.Policy(profile.Goal)
	if !ok {
		return Plan{}, errors.Wrap(ErrUnknownGoal, "look up goal policy", slog.String("goal", profile.Goal))
	}

	modifier := DifficultyModifier(profile)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	generated := Plan{
		Profile:   profile,
		StartDate: time.Now(),
		Weeks:     make(map[string]WeeklyPlan, weeks),
	}
	for week := 1; week <= weeks; week++ {
		progression := progressionFor(week, modifier)
		workouts := make([]Workout, 0, profile.PreferredDays)
		for day := 0; day < profile.PreferredDays; day++ {
			category := selectCategory(rng, policy.Split)
			workouts = append(workouts, s.buildWorkout(rng, category, policy.Intensity[category], profile, progression))
		}
		generated.Weeks[fmt.Sprintf("Week %d", week)] = WeeklyPlan{
			Progression: progression,
			Workouts:    workouts,
		}
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated workout plan",
		slog.String("goal", profile.Goal),
		slog.Int("weeks", weeks),
		slog.Int("days_per_week", profile.PreferredDays))

	return generated, nil
}

// buildWorkout assembles one day's workout for the drawn category.
func (s *Service) buildWorkout(rng *rand.Rand, category Category, intensity string, profile Profile, progression Progression) Workout {
	pool := s.catalog.eligibleExercises(category, profile.HealthConditions)
	if len(pool) == 0 {
		pool = []string{fallbackExercise(category)}
	}

	names := sampleExercises(rng, pool, planExerciseCount(profile.FitnessLevel, progression))
	duration, minutes := totalDuration(category, profile.FitnessLevel)

	exercises := make([]ExerciseEntry, 0, len(names))
	for i, name := range names {
		exercises = append(exercises, formatExercise(name, category, progression, i, len(names), minutes))
	}

	return Workout{
		Type:              category,
		Intensity:         intensity,
		Exercises:         exercises,
		Duration:          duration,
		RequiredEquipment: s.catalog.requiredEquipment(names),
	}
}

// DailyChallenge generates the challenge for one calendar date. The draw is
// seeded from the profile and date, so repeated calls return identical
// challenges. A zero date means today. Profiles with an unrecognized goal get
// the Weight Loss policy.
func (s *Service) DailyChallenge(ctx context.Context, profile Profile, date time.Time) DailyChallenge {
	if date.IsZero() {
		date = time.Now()
	}

	policy, ok := s.policies.Policy(profile.Goal)
	if !ok {
		policy, _ = s.policies.Policy(GoalWeightLoss)
	}

	rng := seededRand(fmt.Sprintf("%d%s%s%d",
		profile.Age, profile.FitnessLevel, date.Format("20060102"), int(date.Weekday())))

	day := int(date.Sub(challengeEpoch).Hours()/24) + 1
	week := weekOf(day)
	progression := progressionFor(week, DifficultyModifier(profile))

	category := selectCategory(rng, policy.Split)
	pool := s.catalog.eligibleExercises(category, profile.HealthConditions)
	if len(pool) == 0 {
		pool = []string{"Low-Impact Alternative"}
	}

	names := sampleExercises(rng, pool, challengeExerciseCount(profile.FitnessLevel))
	duration, minutes := totalDuration(category, profile.FitnessLevel)

	exercises := make([]ExerciseEntry, 0, len(names))
	for i, name := range names {
		exercises = append(exercises, formatExercise(name, category, progression, i, len(names), minutes))
	}

	dayName := date.Weekday().String()
	return DailyChallenge{
		Name:              fmt.Sprintf("%s %s Challenge", dayName, category),
		Date:              date.Format("2006-01-02"),
		DayOfWeek:         dayName,
		Type:              category,
		Difficulty:        string(profile.FitnessLevel),
		Exercises:         exercises,
		Duration:          duration,
		RequiredEquipment: s.catalog.requiredEquipment(names),
	}
}

// ChallengeRange generates the challenges for every date from start through
// end inclusive, capped at 31 days. Each day's draw is independently seeded,
// so the days are generated concurrently.
func (s *Service) ChallengeRange(ctx context.Context, profile Profile, start, end time.Time) ([]DailyChallenge, error) {
	if start.After(end) {
		return nil, errors.Wrap(ErrInvalidRange, "validate challenge range",
			slog.Time("start", start), slog.Time("end", end))
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxChallengeRangeDays {
		days = maxChallengeRangeDays
	}

	challenges := make([]DailyChallenge, days)
	g, ctx := errgroup.WithContext(ctx)
	for i := range challenges {
		g.Go(func() error {
			challenges[i] = s.DailyChallenge(ctx, profile, start.AddDate(0, 0, i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate challenge range: %w", err)
	}
	return challenges, nil
}

// WorkoutTypes returns the workout categories the catalog knows about.
func (s *Service) WorkoutTypes() []Category {
	return s.catalog.Categories()
}

// Exercises returns every exercise grouped by category.
func (s *Service) Exercises() map[Category][]string {
	return s.catalog.AllExercises()
}

// ExercisesByType returns the exercises for one category.
func (s *Service) ExercisesByType(category Category) ([]string, bool) {
	return s.catalog.Exercises(category)
}

// EquipmentMap returns the exercise to required-equipment mapping.
func (s *Service) EquipmentMap() map[string][]string {
	return s.catalog.EquipmentMap()
}

// Goals returns the supported fitness goals.
func (s *Service) Goals() []string {
	return s.policies.Goals()
}
