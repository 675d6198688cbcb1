package topics

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typedrill/typedrill/internal/router"
	"github.com/typedrill/typedrill/internal/screen"
	"github.com/typedrill/typedrill/internal/topics"
	"github.com/typedrill/typedrill/internal/ui/components"
	"github.com/typedrill/typedrill/internal/ui/layout"
	"github.com/typedrill/typedrill/internal/ui/theme"
)

// topicDetail shows a single topic with its explanation, code example
// and key points. Long content scrolls. Left/right page through the
// sibling topics of the same list, swapping the screen in place so a
// single esc still returns to the list.
type topicDetail struct {
	siblings     []topics.Topic
	index        int
	topic        topics.Topic
	scrollOffset int
}

var _ screen.Screen = (*topicDetail)(nil)

func newTopicDetail(siblings []topics.Topic, index int) *topicDetail {
	return &topicDetail{
		siblings: siblings,
		index:    index,
		topic:    siblings[index],
	}
}

// sibling returns the detail screen delta steps away in the sibling
// list, or nil at either end.
func (d *topicDetail) sibling(delta int) *topicDetail {
	next := d.index + delta
	if next < 0 || next >= len(d.siblings) {
		return nil
	}
	return newTopicDetail(d.siblings, next)
}

func (d *topicDetail) Init() tea.Cmd {
	return nil
}

func (d *topicDetail) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.scrollOffset > 0 {
			d.scrollOffset--
		}
	case "down", "j":
		d.scrollOffset++
	case "g":
		d.scrollOffset = 0
	case "left", "h":
		if prev := d.sibling(-1); prev != nil {
			return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: prev} }
		}
	case "right", "l":
		if next := d.sibling(1); next != nil {
			return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	case "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return d, nil
}

func (d *topicDetail) View(width, height int) string {
	lines := d.contentLines(width)

	// Clamp the scroll so the last page stays full.
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.scrollOffset > maxOffset {
		d.scrollOffset = maxOffset
	}

	end := d.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[d.scrollOffset:end], "\n")
}

func (d *topicDetail) Title() string {
	return d.topic.Title
}

// KeyHints returns the key binding hints for the footer.
func (d *topicDetail) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "←→", Description: "Topic"},
		{Key: "Esc", Description: "Back"},
	}
}

// contentLines renders the topic body as individual lines for scrolling.
func (d *topicDetail) contentLines(width int) []string {
	textWidth := width - 8
	if textWidth < 20 {
		textWidth = 20
	}

	indent := lipgloss.NewStyle().PaddingLeft(4)

	var sections []string

	sections = append(sections, "")
	sections = append(sections, indent.Render(components.CategoryBadge(d.topic.Category)))
	sections = append(sections, "")

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(textWidth).
		Render(d.topic.Content)
	sections = append(sections, indent.Render(body))

	if d.topic.CodeExample != "" {
		sections = append(sections, "")
		sections = append(sections, indent.Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("Example")))
		code := theme.CodeBlock.
			Width(textWidth).
			Render(d.topic.CodeExample)
		sections = append(sections, indent.Render(code))
	}

	if len(d.topic.KeyPoints) > 0 {
		sections = append(sections, "")
		sections = append(sections, indent.Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("Key points")))
		for _, kp := range d.topic.KeyPoints {
			point := lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(textWidth).
				Render("• " + kp)
			sections = append(sections, indent.Render(point))
		}
	}

	return strings.Split(strings.Join(sections, "\n"), "\n")
}
