package quiz

// Tracker records the learner's selected option per question within one
// session. The first answer for a question is final: later submissions for
// the same ID are no-ops. A Tracker is owned by exactly one Session and is
// discarded when the session resets.
type Tracker struct {
	selected map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{selected: make(map[string]int)}
}

// Record stores the selected option for a question. Returns false if the
// question already has a recorded answer, in which case nothing changes.
func (t *Tracker) Record(questionID string, optionIndex int) bool {
	if _, done := t.selected[questionID]; done {
		return false
	}
	t.selected[questionID] = optionIndex
	return true
}

// Answer returns the recorded option for a question, or false if unanswered.
func (t *Tracker) Answer(questionID string) (int, bool) {
	idx, ok := t.selected[questionID]
	return idx, ok
}

// Answered reports whether the question has a recorded answer.
func (t *Tracker) Answered(questionID string) bool {
	_, ok := t.selected[questionID]
	return ok
}

// Len returns the number of recorded answers.
func (t *Tracker) Len() int {
	return len(t.selected)
}
