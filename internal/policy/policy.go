package policy

// Fixed interview policy: six questions in three difficulty tiers, two
// questions per tier, with per-tier score ceilings and answer time limits.
// Everything that depends on these numbers reads them from here.

// Difficulty identifies one interview tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// QuestionCount is the fixed number of questions per interview.
const QuestionCount = 6

// QuestionsPerTier is how many questions each tier contributes.
const QuestionsPerTier = 2

var ceilings = map[Difficulty]float64{
	Easy:   2,
	Medium: 3,
	Hard:   5,
}

// answer time limits in seconds
var timeLimits = map[Difficulty]int{
	Easy:   20,
	Medium: 60,
	Hard:   120,
}

// ForIndex returns the difficulty of the question at a 0-based index:
// 0,1 easy; 2,3 medium; 4,5 hard.
func ForIndex(index int) Difficulty {
	switch {
	case index < 2:
		return Easy
	case index < 4:
		return Medium
	default:
		return Hard
	}
}

// MaxScore is the ceiling for a single question of the given tier.
func MaxScore(d Difficulty) float64 {
	if c, ok := ceilings[d]; ok {
		return c
	}
	return ceilings[Medium]
}

// TimeLimit returns the answer time limit in seconds for the given tier.
func TimeLimit(d Difficulty) int {
	if t, ok := timeLimits[d]; ok {
		return t
	}
	return timeLimits[Medium]
}

// TotalCeiling is the maximum attainable final score.
func TotalCeiling() float64 {
	return QuestionsPerTier * (ceilings[Easy] + ceilings[Medium] + ceilings[Hard])
}

// Valid reports whether d is a known difficulty tier.
func Valid(d Difficulty) bool {
	_, ok := ceilings[d]
	return ok
}
