package catalog

import "fmt"

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// DifficultyDisplayName returns a human-readable name for a difficulty.
func DifficultyDisplayName(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Category groups questions for filtered quiz runs.
type Category string

const (
	// CategoryAll is the pseudo-category selecting the full bank.
	// It is valid for quiz selection but never stored on a question.
	CategoryAll Category = "all"

	CategoryBasics   Category = "basics"
	CategoryAdvanced Category = "advanced"

	// CategoryNone marks a question not yet assigned to a category.
	// Such questions appear in the full bank but in no filtered view.
	CategoryNone Category = ""
)

// StoredCategories returns the categories a question may carry.
func StoredCategories() []Category {
	return []Category{CategoryBasics, CategoryAdvanced}
}

// ParseCategory parses a user-supplied category name. CategoryAll is
// accepted, CategoryNone is not.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAll, CategoryBasics, CategoryAdvanced:
		return Category(s), nil
	default:
		return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryAll:
		return "All Questions"
	case CategoryBasics:
		return "Basics"
	case CategoryAdvanced:
		return "Advanced"
	case CategoryNone:
		return "Unclassified"
	default:
		return string(c)
	}
}

// Question is a single multiple-choice question. Questions are loaded
// once from the embedded bank and never mutated afterwards.
type Question struct {
	ID           string
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
	Difficulty   Difficulty
	Category     Category
}
