package catalog

import (
	"errors"
	"testing"
)

func TestDefaultBankLoads(t *testing.T) {
	c := Default()
	if c.Len() != 28 {
		t.Fatalf("Len() = %d, want 28", c.Len())
	}
}

func TestAllPreservesBankOrder(t *testing.T) {
	c := Default()
	all := c.All()
	if len(all) != c.Len() {
		t.Fatalf("All() returned %d questions, want %d", len(all), c.Len())
	}
	if all[0].ID != "q1" || all[len(all)-1].ID != "q28" {
		t.Errorf("All() order = %s..%s, want q1..q28", all[0].ID, all[len(all)-1].ID)
	}
}

func TestByCategory(t *testing.T) {
	c := Default()

	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryAll, 28},
		{CategoryBasics, 20},
		{CategoryAdvanced, 8},
	}

	for _, tt := range tests {
		got, err := c.ByCategory(tt.cat)
		if err != nil {
			t.Fatalf("ByCategory(%q) error: %v", tt.cat, err)
		}
		if len(got) != tt.want {
			t.Errorf("ByCategory(%q) = %d questions, want %d", tt.cat, len(got), tt.want)
		}
	}
}

func TestByCategoryUnknown(t *testing.T) {
	c := Default()
	_, err := c.ByCategory("expert")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("ByCategory(expert) error = %v, want ErrUnknownCategory", err)
	}
}

func TestCategoriesAreDisjoint(t *testing.T) {
	c := Default()

	basics, err := c.ByCategory(CategoryBasics)
	if err != nil {
		t.Fatal(err)
	}
	advanced, err := c.ByCategory(CategoryAdvanced)
	if err != nil {
		t.Fatal(err)
	}

	basicsIDs := make(map[string]bool, len(basics))
	for _, q := range basics {
		basicsIDs[q.ID] = true
	}
	for _, q := range advanced {
		if basicsIDs[q.ID] {
			t.Errorf("question %q appears in both basics and advanced", q.ID)
		}
	}

	// Every categorized ID exists in the full bank exactly once.
	seen := make(map[string]int)
	for _, q := range c.All() {
		seen[q.ID]++
	}
	for _, q := range append(basics, advanced...) {
		if seen[q.ID] != 1 {
			t.Errorf("question %q appears %d times in All(), want 1", q.ID, seen[q.ID])
		}
	}
}

func TestByDifficultyPreservesOrder(t *testing.T) {
	c := Default()
	prevIndex := -1
	index := make(map[string]int)
	for i, q := range c.All() {
		index[q.ID] = i
	}
	for _, q := range c.ByDifficulty(DifficultyHard) {
		if q.Difficulty != DifficultyHard {
			t.Errorf("question %q has difficulty %q, want hard", q.ID, q.Difficulty)
		}
		if index[q.ID] < prevIndex {
			t.Errorf("question %q out of bank order", q.ID)
		}
		prevIndex = index[q.ID]
	}
}

func TestByID(t *testing.T) {
	c := Default()

	q, ok := c.ByID("q12")
	if !ok {
		t.Fatal("ByID(q12) not found")
	}
	if q.CorrectIndex != 1 {
		t.Errorf("q12 CorrectIndex = %d, want 1", q.CorrectIndex)
	}

	if _, ok := c.ByID("q999"); ok {
		t.Error("ByID(q999) found, want absent")
	}
}

func TestRandomSample(t *testing.T) {
	c := Default()

	t.Run("distinct subset", func(t *testing.T) {
		sample := c.RandomSample(5)
		if len(sample) != 5 {
			t.Fatalf("RandomSample(5) = %d questions, want 5", len(sample))
		}
		seen := make(map[string]bool)
		for _, q := range sample {
			if seen[q.ID] {
				t.Errorf("duplicate question %q in sample", q.ID)
			}
			seen[q.ID] = true
			if _, ok := c.ByID(q.ID); !ok {
				t.Errorf("sampled question %q not in catalog", q.ID)
			}
		}
	})

	t.Run("non-positive n", func(t *testing.T) {
		if got := c.RandomSample(0); len(got) != 0 {
			t.Errorf("RandomSample(0) = %d questions, want 0", len(got))
		}
		if got := c.RandomSample(-3); len(got) != 0 {
			t.Errorf("RandomSample(-3) = %d questions, want 0", len(got))
		}
	})

	t.Run("oversized n is a full permutation", func(t *testing.T) {
		sample := c.RandomSample(1000)
		if len(sample) != c.Len() {
			t.Fatalf("RandomSample(1000) = %d questions, want %d", len(sample), c.Len())
		}
		seen := make(map[string]bool)
		for _, q := range sample {
			seen[q.ID] = true
		}
		if len(seen) != c.Len() {
			t.Errorf("permutation has %d distinct IDs, want %d", len(seen), c.Len())
		}
	})
}
