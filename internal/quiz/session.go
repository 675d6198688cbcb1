package quiz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/typedrill/typedrill/internal/catalog"
)

// ErrEmptySelection is returned when a quiz is started over a category
// whose resolved question sequence is empty. Starting with no current
// question would leave the session in an undefined Active state.
var ErrEmptySelection = errors.New("no questions in selection")

// Phase is the current phase of a quiz session.
type Phase int

const (
	PhaseMenu   Phase = iota // Resting state; no run in progress
	PhaseActive              // Walking through the selected questions
	PhaseResult              // All questions exhausted; summary available
)

// Session is one learner's run through a selected question sequence.
// Sessions are cheap, disposable value objects: Reset returns to the menu
// and a new run may begin indefinitely. Every transition executes to
// completion synchronously; nothing here blocks or does I/O.
type Session struct {
	ID        string
	Phase     Phase
	Category  catalog.Category
	Questions []catalog.Question
	Index     int
	Tracker   *Tracker
}

// NewSession creates a fresh Menu-phase session.
func NewSession() *Session {
	return &Session{
		ID:      uuid.New().String(),
		Phase:   PhaseMenu,
		Tracker: NewTracker(),
	}
}

// Start resolves the category's question sequence from the catalog and
// enters the Active phase. The sequence is fixed for the whole run. Fails
// with ErrEmptySelection (session unchanged) if the category is empty, and
// propagates catalog.ErrUnknownCategory for unrecognized categories.
func (s *Session) Start(c *catalog.Catalog, cat catalog.Category) error {
	questions, err := c.ByCategory(cat)
	if err != nil {
		return err
	}
	return s.begin(cat, questions)
}

// StartRandom draws n random questions from the full bank and enters the
// Active phase. Same guards as Start.
func (s *Session) StartRandom(c *catalog.Catalog, n int) error {
	return s.begin(catalog.CategoryAll, c.RandomSample(n))
}

func (s *Session) begin(cat catalog.Category, questions []catalog.Question) error {
	if len(questions) == 0 {
		return ErrEmptySelection
	}
	s.Category = cat
	s.Questions = questions
	s.Index = 0
	s.Tracker = NewTracker()
	s.Phase = PhaseActive
	return nil
}

// Current returns the question at the cursor. False outside the Active phase.
func (s *Session) Current() (catalog.Question, bool) {
	if s.Phase != PhaseActive || s.Index < 0 || s.Index >= len(s.Questions) {
		return catalog.Question{}, false
	}
	return s.Questions[s.Index], true
}

// SubmitAnswer records the learner's choice for the current question.
// Submissions for a non-current question are ignored (stale UI events), as
// are repeat submissions for an already-answered question: the first answer
// is final and the score can never double count. An out-of-range option
// index is recorded as-is and simply never matches the correct index, so
// malformed input marks the question wrong instead of crashing the run.
// Returns true if an answer was recorded.
func (s *Session) SubmitAnswer(questionID string, optionIndex int) bool {
	q, ok := s.Current()
	if !ok || q.ID != questionID {
		return false
	}
	return s.Tracker.Record(questionID, optionIndex)
}

// Advance moves to the next question, or enters the Result phase once the
// sequence is exhausted. Advancing past an unanswered question is allowed;
// it counts toward the unanswered tally in the summary. No-op outside the
// Active phase.
func (s *Session) Advance() {
	if s.Phase != PhaseActive {
		return
	}
	if s.Index < len(s.Questions)-1 {
		s.Index++
		return
	}
	s.Phase = PhaseResult
}

// Reset discards the run and returns to the Menu phase, from any phase.
func (s *Session) Reset() {
	s.Category = catalog.CategoryNone
	s.Questions = nil
	s.Index = 0
	s.Tracker = NewTracker()
	s.Phase = PhaseMenu
}

// Score is the count of answered questions whose recorded option equals
// the correct index. Always derived from the tracker, never stored, so it
// cannot drift from the recorded answers.
func (s *Session) Score() int {
	score := 0
	for _, q := range s.Questions {
		if idx, ok := s.Tracker.Answer(q.ID); ok && idx == q.CorrectIndex {
			score++
		}
	}
	return score
}

// Results builds the summary for this run. It is the Result-phase view,
// though the derivation is valid at any point of an active run.
func (s *Session) Results() Summary {
	return Summarize(s.Questions, s.Tracker)
}
