package plan

import "slices"

// SplitShare is one category's share of a goal's training time. Shares for a
// goal sum to 1 and their order defines the weighted-draw walk order.
type SplitShare struct {
	Category Category
	Share    float64
}

// GoalPolicy describes how training time is split across workout categories
// for one fitness goal, and the intensity prescribed per category.
type GoalPolicy struct {
	Primary   Category
	Split     []SplitShare
	Intensity map[Category]string
}

// PolicyTable maps fitness goals to their policies. Like the catalog it is
// immutable after construction and safe for concurrent reads.
type PolicyTable struct {
	order    []string
	policies map[string]GoalPolicy
}

// Goal names recognized by the default policy table.
const (
	GoalWeightLoss  = "Weight Loss"
	GoalMuscleGain  = "Muscle Gain"
	GoalEndurance   = "Endurance"
	GoalFlexibility = "Flexibility"
)

// NewPolicyTable builds the default goal policy table.
func NewPolicyTable() *PolicyTable {
	return &PolicyTable{
		order: []string{GoalWeightLoss, GoalMuscleGain, GoalEndurance, GoalFlexibility},
		policies: map[string]GoalPolicy{
			GoalWeightLoss: {
				Primary: CategoryCardio,
				Split: []SplitShare{
					{Category: CategoryCardio, Share: 0.50},
					{Category: CategoryStrength, Share: 0.30},
					{Category: CategoryHIIT, Share: 0.20},
				},
				Intensity: map[Category]string{
					CategoryCardio:   "65-75% max heart rate",
					CategoryStrength: "12-15 reps",
					CategoryHIIT:     "30 seconds work/30 seconds rest",
				},
			},
			GoalMuscleGain: {
				Primary: CategoryStrength,
				Split: []SplitShare{
					{Category: CategoryStrength, Share: 0.70},
					{Category: CategoryCardio, Share: 0.15},
					{Category: CategoryFlexibility, Share: 0.15},
				},
				Intensity: map[Category]string{
					CategoryStrength:    "8-12 reps",
					CategoryCardio:      "20-30 minutes low intensity",
					CategoryFlexibility: "15-20 minutes",
				},
			},
			GoalEndurance: {
				Primary: CategoryCardio,
				Split: []SplitShare{
					{Category: CategoryCardio, Share: 0.60},
					{Category: CategoryStrength, Share: 0.25},
					{Category: CategoryFlexibility, Share: 0.15},
				},
				Intensity: map[Category]string{
					CategoryCardio:      "60-70% max heart rate",
					CategoryStrength:    "15-20 reps",
					CategoryFlexibility: "20-30 minutes",
				},
			},
			GoalFlexibility: {
				Primary: CategoryFlexibility,
				Split: []SplitShare{
					{Category: CategoryFlexibility, Share: 0.60},
					{Category: CategoryStrength, Share: 0.25},
					{Category: CategoryCardio, Share: 0.15},
				},
				Intensity: map[Category]string{
					CategoryFlexibility: "30-45 minutes",
					CategoryStrength:    "12-15 reps",
					CategoryCardio:      "20-30 minutes low intensity",
				},
			},
		},
	}
}

// Goals returns the recognized goal names in table order.
func (t *PolicyTable) Goals() []string {
	return slices.Clone(t.order)
}

// Policy returns the policy for a goal.
func (t *PolicyTable) Policy(goal string) (GoalPolicy, bool) {
	policy, ok := t.policies[goal]
	return policy, ok
}
