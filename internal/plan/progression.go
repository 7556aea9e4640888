package plan

// difficultyModifiers maps each fitness level to its base difficulty scaling.
// Unrecognized levels scale by 1.
var difficultyModifiers = map[FitnessLevel]float64{
	LevelBeginner:     0.8,
	LevelIntermediate: 1.1,
	LevelAdvanced:     1.4,
}

// healthConditionPenalty is applied once when the profile carries any health
// condition, regardless of how many.
const healthConditionPenalty = 0.9

// DifficultyModifier computes the scalar difficulty for a profile from its
// fitness level and health conditions.
func DifficultyModifier(profile Profile) float64 {
	modifier, ok := difficultyModifiers[profile.FitnessLevel]
	if !ok {
		modifier = 1.0
	}
	if len(profile.HealthConditions) > 0 {
		modifier *= healthConditionPenalty
	}
	return modifier
}

// progressionFor scales volume and intensity linearly with the week number.
// Week 1 yields exactly the difficulty modifier; complexity caps at 3.
func progressionFor(week int, modifier float64) Progression {
	complexity := 1 + (week-1)/2
	if complexity > 3 {
		complexity = 3
	}
	return Progression{
		VolumeMultiplier:    (1 + 0.1*float64(week-1)) * modifier,
		IntensityMultiplier: (1 + 0.05*float64(week-1)) * modifier,
		ComplexityLevel:     complexity,
	}
}
