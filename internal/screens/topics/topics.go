package topics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typedrill/typedrill/internal/catalog"
	"github.com/typedrill/typedrill/internal/router"
	"github.com/typedrill/typedrill/internal/screen"
	"github.com/typedrill/typedrill/internal/topics"
	"github.com/typedrill/typedrill/internal/ui/layout"
	"github.com/typedrill/typedrill/internal/ui/theme"
)

// TopicsScreen lists the topics of one category.
type TopicsScreen struct {
	category catalog.Category
	topics   []topics.Topic
	cursor   int
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates a new TopicsScreen for the given category.
func New(category catalog.Category) *TopicsScreen {
	return &TopicsScreen{
		category: category,
		topics:   topics.ByCategory(category),
	}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.topics)-1 {
			t.cursor++
		}
	case "enter":
		if t.cursor >= 0 && t.cursor < len(t.topics) {
			detail := newTopicDetail(t.topics, t.cursor)
			return t, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail}
			}
		}
	case "q":
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return t, nil
}

func (t *TopicsScreen) View(width, height int) string {
	if len(t.topics) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  No topics in this category.")
	}

	var lines []string
	lines = append(lines, "")

	for i, topic := range t.topics {
		num := fmt.Sprintf("%2d.", i+1)
		if i == t.cursor {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render(fmt.Sprintf("  ▸ %s %s", num, topic.Title)))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(fmt.Sprintf("    %s %s", num, topic.Title)))
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("        "+topic.Description))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (t *TopicsScreen) Title() string {
	switch t.category {
	case catalog.CategoryBasics:
		return "TypeScript Basics"
	case catalog.CategoryAdvanced:
		return "Advanced Topics"
	default:
		return "Topics"
	}
}

// KeyHints returns the key binding hints for the footer.
func (t *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}
