package catalog

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedBank(t *testing.T) {
	c, err := Load(EmbeddedBank())
	if err != nil {
		t.Fatalf("Load(embedded) error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded bank is empty")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		bank string
	}{
		{
			name: "missing prompt",
			bank: `{"questions":[{"id":"q1","options":["a","b"],"correctIndex":0,"explanation":"x","difficulty":"easy"}]}`,
		},
		{
			name: "single option",
			bank: `{"questions":[{"id":"q1","prompt":"p","options":["a"],"correctIndex":0,"explanation":"x","difficulty":"easy"}]}`,
		},
		{
			name: "unknown difficulty",
			bank: `{"questions":[{"id":"q1","prompt":"p","options":["a","b"],"correctIndex":0,"explanation":"x","difficulty":"brutal"}]}`,
		},
		{
			name: "unknown category",
			bank: `{"questions":[{"id":"q1","prompt":"p","options":["a","b"],"correctIndex":0,"explanation":"x","difficulty":"easy","category":"expert"}]}`,
		},
		{
			name: "empty bank",
			bank: `{"questions":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load([]byte(tt.bank)); err == nil {
				t.Error("expected schema validation error")
			}
		})
	}
}

func TestLoadRejectsStructuralDefects(t *testing.T) {
	t.Run("duplicate IDs", func(t *testing.T) {
		bank := `{"questions":[
			{"id":"q1","prompt":"p","options":["a","b"],"correctIndex":0,"explanation":"x","difficulty":"easy"},
			{"id":"q1","prompt":"p2","options":["a","b"],"correctIndex":1,"explanation":"y","difficulty":"hard"}
		]}`
		_, err := Load([]byte(bank))
		if err == nil || !strings.Contains(err.Error(), "duplicate question ID") {
			t.Errorf("error = %v, want duplicate ID report", err)
		}
	})

	t.Run("correct index out of range", func(t *testing.T) {
		bank := `{"questions":[
			{"id":"q1","prompt":"p","options":["a","b"],"correctIndex":2,"explanation":"x","difficulty":"easy"}
		]}`
		_, err := Load([]byte(bank))
		if err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("error = %v, want out-of-range report", err)
		}
	})
}

func TestLoadAcceptsUnclassifiedQuestions(t *testing.T) {
	bank := `{"questions":[
		{"id":"q1","prompt":"p","options":["a","b"],"correctIndex":0,"explanation":"x","difficulty":"easy","category":"basics"},
		{"id":"q2","prompt":"p2","options":["a","b"],"correctIndex":1,"explanation":"y","difficulty":"easy"}
	]}`
	c, err := Load([]byte(bank))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	all := c.All()
	if len(all) != 2 {
		t.Fatalf("All() = %d questions, want 2", len(all))
	}

	basics, err := c.ByCategory(CategoryBasics)
	if err != nil {
		t.Fatal(err)
	}
	if len(basics) != 1 {
		t.Errorf("ByCategory(basics) = %d questions, want 1 (unclassified excluded)", len(basics))
	}
	advanced, err := c.ByCategory(CategoryAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	if len(advanced) != 0 {
		t.Errorf("ByCategory(advanced) = %d questions, want 0", len(advanced))
	}
}
