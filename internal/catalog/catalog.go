package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrUnknownCategory is returned when a category filter is invoked with a
// value outside the recognized set.
var ErrUnknownCategory = errors.New("unknown category")

// Catalog holds the full question bank with precomputed indices.
// It is read-only after construction and safe to share across sessions.
type Catalog struct {
	questions    []Question
	byID         map[string]*Question
	byCategory   map[Category][]Question
	byDifficulty map[Difficulty][]Question
}

// newCatalog constructs a Catalog from already-validated questions.
func newCatalog(questions []Question) *Catalog {
	c := &Catalog{
		questions:    questions,
		byID:         make(map[string]*Question, len(questions)),
		byCategory:   make(map[Category][]Question),
		byDifficulty: make(map[Difficulty][]Question),
	}
	for i := range c.questions {
		q := &c.questions[i]
		c.byID[q.ID] = q
		c.byDifficulty[q.Difficulty] = append(c.byDifficulty[q.Difficulty], *q)
		if q.Category != CategoryNone {
			c.byCategory[q.Category] = append(c.byCategory[q.Category], *q)
		}
	}
	return c
}

// Len returns the number of questions in the bank.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// All returns every question in bank order.
func (c *Catalog) All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// ByDifficulty returns all questions of the given difficulty, bank order preserved.
func (c *Catalog) ByDifficulty(d Difficulty) []Question {
	src := c.byDifficulty[d]
	out := make([]Question, len(src))
	copy(out, src)
	return out
}

// ByCategory returns all questions in the given category, bank order
// preserved. CategoryAll selects the full bank. Unrecognized categories
// return ErrUnknownCategory rather than an empty slice, so callers cannot
// mistake a typo for an empty category.
func (c *Catalog) ByCategory(cat Category) ([]Question, error) {
	switch cat {
	case CategoryAll:
		return c.All(), nil
	case CategoryBasics, CategoryAdvanced:
		src := c.byCategory[cat]
		out := make([]Question, len(src))
		copy(out, src)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(cat))
	}
}

// ByID returns the question with the given ID, or false if absent.
func (c *Catalog) ByID(id string) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// RandomSample returns n distinct questions drawn without replacement, in
// randomized order. n <= 0 returns an empty slice; n >= Len() returns a
// full random permutation. Uses a partial Fisher-Yates shuffle: each of
// the first n positions is swapped with a uniformly chosen later position.
func (c *Catalog) RandomSample(n int) []Question {
	if n <= 0 {
		return []Question{}
	}
	if n > len(c.questions) {
		n = len(c.questions)
	}

	pool := make([]Question, len(c.questions))
	copy(pool, c.questions)
	for i := 0; i < n; i++ {
		j := i + rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
