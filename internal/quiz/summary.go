package quiz

import (
	"math"

	"github.com/typedrill/typedrill/internal/catalog"
)

// Grade is the qualitative tier derived from the percentage score.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePassing   Grade = "passing"
	GradeNeedsWork Grade = "needs improvement"
)

// GradeFor maps a percentage to its grade tier.
func GradeFor(percentage int) Grade {
	switch {
	case percentage >= 90:
		return GradeExcellent
	case percentage >= 70:
		return GradeGood
	case percentage >= 60:
		return GradePassing
	default:
		return GradeNeedsWork
	}
}

// Summary holds the data displayed on the result screen.
type Summary struct {
	Total      int
	Correct    int
	Incorrect  int
	Unanswered int
	Percentage int
	Grade      Grade
}

// Summarize derives the result view from the question sequence and the
// recorded answers. Pure: calling it never changes session state. The
// question sequence must be non-empty; Start guarantees that for any
// session that can reach the Result phase.
func Summarize(questions []catalog.Question, tracker *Tracker) Summary {
	sum := Summary{Total: len(questions)}
	for _, q := range questions {
		idx, ok := tracker.Answer(q.ID)
		switch {
		case !ok:
			sum.Unanswered++
		case idx == q.CorrectIndex:
			sum.Correct++
		default:
			sum.Incorrect++
		}
	}
	if sum.Total > 0 {
		sum.Percentage = int(math.Round(float64(sum.Correct) / float64(sum.Total) * 100))
	}
	sum.Grade = GradeFor(sum.Percentage)
	return sum
}
