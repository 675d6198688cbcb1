package topics

import (
	"fmt"
	"strings"

	"github.com/typedrill/typedrill/internal/catalog"
)

// Topic is one learning page: prose, a runnable code example, and the key
// points a learner should take away. Topics are static content, registered
// once at init and read-only afterwards.
type Topic struct {
	ID          string
	Title       string
	Description string
	Category    catalog.Category
	Content     string
	CodeExample string
	KeyPoints   []string
}

// registry holds the topic set with precomputed indices.
type registry struct {
	topics     []Topic
	byID       map[string]*Topic
	byCategory map[catalog.Category][]Topic
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(topics []Topic) (*registry, error) {
	if err := validateTopics(topics); err != nil {
		return nil, err
	}
	r := &registry{
		topics:     topics,
		byID:       make(map[string]*Topic, len(topics)),
		byCategory: make(map[catalog.Category][]Topic),
	}
	for i := range r.topics {
		t := &r.topics[i]
		r.byID[t.ID] = t
		r.byCategory[t.Category] = append(r.byCategory[t.Category], *t)
	}
	return r, nil
}

// validateTopics performs structural checks on the topic set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTopics(topics []Topic) error {
	var errs []string

	idSet := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t.ID == "" {
			errs = append(errs, "topic with empty ID")
			continue
		}
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		idSet[t.ID] = true

		switch t.Category {
		case catalog.CategoryBasics, catalog.CategoryAdvanced:
		default:
			errs = append(errs, fmt.Sprintf("topic %q has invalid category %q", t.ID, string(t.Category)))
		}
		if t.Title == "" {
			errs = append(errs, fmt.Sprintf("topic %q has no title", t.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid topic set:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// All returns every topic in registration order.
func All() []Topic {
	out := make([]Topic, len(reg.topics))
	copy(out, reg.topics)
	return out
}

// ByCategory returns the topics in a category, registration order preserved.
func ByCategory(cat catalog.Category) []Topic {
	src := reg.byCategory[cat]
	out := make([]Topic, len(src))
	copy(out, src)
	return out
}

// ByID returns the topic with the given ID, or false if absent.
func ByID(id string) (Topic, bool) {
	t, ok := reg.byID[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}
