package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var bankData []byte

// bankQuestion is the JSON shape of one question in the bank file.
type bankQuestion struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category,omitempty"`
}

type bankFile struct {
	Questions []bankQuestion `json:"questions"`
}

// Load parses and validates a question bank. Any violation is a defect in
// the bank itself, not a runtime condition: the error aborts initialization.
func Load(data []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	compiled, err := compileBankSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question bank schema validation failed: %w", err)
	}

	var bank bankFile
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	questions := make([]Question, 0, len(bank.Questions))
	for _, bq := range bank.Questions {
		questions = append(questions, Question{
			ID:           bq.ID,
			Prompt:       bq.Prompt,
			Options:      bq.Options,
			CorrectIndex: bq.CorrectIndex,
			Explanation:  bq.Explanation,
			Difficulty:   Difficulty(bq.Difficulty),
			Category:     Category(bq.Category),
		})
	}

	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	return newCatalog(questions), nil
}

// compileBankSchema compiles the bank JSON schema.
// The jsonschema library expects a parsed JSON value, not raw bytes.
func compileBankSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-bank.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return compiled, nil
}

// validateQuestions performs the structural checks the schema cannot.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q has %d options, need at least 2", q.ID, len(q.Options)))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %q correct index %d out of range [0, %d)", q.ID, q.CorrectIndex, len(q.Options)))
		}
		switch q.Category {
		case CategoryNone, CategoryBasics, CategoryAdvanced:
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown category %q", q.ID, string(q.Category)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid question bank:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded bank. A corrupt
// embedded bank is a build defect; Default panics rather than limping on.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bankData)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded question bank is invalid: %v", defaultErr))
	}
	return defaultCatalog
}

// EmbeddedBank returns the raw embedded bank bytes, for external validation.
func EmbeddedBank() []byte {
	return bankData
}
