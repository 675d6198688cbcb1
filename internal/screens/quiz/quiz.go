package quiz

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typedrill/typedrill/internal/catalog"
	"github.com/typedrill/typedrill/internal/quiz"
	"github.com/typedrill/typedrill/internal/router"
	"github.com/typedrill/typedrill/internal/screen"
	"github.com/typedrill/typedrill/internal/ui/components"
	"github.com/typedrill/typedrill/internal/ui/layout"
	"github.com/typedrill/typedrill/internal/ui/theme"
)

// categoryChoice is one entry in the category picker.
type categoryChoice struct {
	category catalog.Category
	label    string
	detail   string
}

// QuizScreen drives a quiz session from category pick to results.
type QuizScreen struct {
	cat     *catalog.Catalog
	session *quiz.Session

	// category picker state
	choices    []categoryChoice
	cursor     int
	customMode bool
	customN    components.TextInput
	startErr   string

	// randomN is the sample size when the session was started as a
	// random drill, 0 for full-category sessions.
	randomN int

	// active question state
	choice   components.MultiChoice
	revealed bool

	// resultFocus selects the focused result button: 0 retry, 1 menu.
	resultFocus int
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a QuizScreen that opens on the category picker.
func New(c *catalog.Catalog) *QuizScreen {
	basics, _ := c.ByCategory(catalog.CategoryBasics)
	advanced, _ := c.ByCategory(catalog.CategoryAdvanced)

	choices := []categoryChoice{
		{
			category: catalog.CategoryAll,
			label:    "All Questions",
			detail:   fmt.Sprintf("%d questions across every topic", c.Len()),
		},
		{
			category: catalog.CategoryBasics,
			label:    "Basics",
			detail:   fmt.Sprintf("%d questions on core TypeScript", len(basics)),
		},
		{
			category: catalog.CategoryAdvanced,
			label:    "Advanced",
			detail:   fmt.Sprintf("%d questions on advanced features", len(advanced)),
		},
	}

	return &QuizScreen{
		cat:     c,
		session: quiz.NewSession(),
		choices: choices,
		customN: components.NewTextInput("count", true, 3),
	}
}

// NewCategory creates a QuizScreen that starts immediately in the given
// category, skipping the picker.
func NewCategory(c *catalog.Catalog, cat catalog.Category) *QuizScreen {
	s := New(c)
	if err := s.session.Start(c, cat); err != nil {
		s.startErr = err.Error()
		return s
	}
	s.loadCurrent()
	return s
}

// NewRandom creates a QuizScreen that starts immediately with n randomly
// sampled questions, skipping the category picker.
func NewRandom(c *catalog.Catalog, n int) *QuizScreen {
	s := New(c)
	if err := s.session.StartRandom(c, n); err != nil {
		s.startErr = err.Error()
		return s
	}
	s.randomN = n
	s.loadCurrent()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase {
	case quiz.PhaseMenu:
		return s.updateMenu(msg)
	case quiz.PhaseActive:
		return s.updateActive(msg)
	case quiz.PhaseResult:
		return s.updateResult(msg)
	}
	return s, nil
}

func (s *QuizScreen) updateMenu(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.customMode {
		return s.updateCustom(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "r":
		s.customMode = true
		s.startErr = ""
		return s, s.customN.Init()
	case "enter":
		s.startErr = ""
		if err := s.session.Start(s.cat, s.choices[s.cursor].category); err != nil {
			s.startErr = err.Error()
			return s, nil
		}
		s.randomN = 0
		s.loadCurrent()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *QuizScreen) updateCustom(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch kmsg.String() {
		case "esc", "q":
			s.customMode = false
			s.startErr = ""
			return s, nil
		case "enter":
			n, err := s.customN.NumericValue()
			if err != nil || n <= 0 {
				s.startErr = "enter a positive number"
				return s, nil
			}
			if err := s.session.StartRandom(s.cat, n); err != nil {
				s.startErr = err.Error()
				return s, nil
			}
			s.randomN = n
			s.customMode = false
			s.startErr = ""
			s.loadCurrent()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.customN, cmd = s.customN.Update(msg)
	return s, cmd
}

func (s *QuizScreen) updateActive(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.revealed {
		switch kmsg.String() {
		case "enter", "n", " ":
			s.session.Advance()
			if s.session.Phase == quiz.PhaseActive {
				s.loadCurrent()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Submitted {
		if q, ok := s.session.Current(); ok {
			s.session.SubmitAnswer(q.ID, s.choice.ChosenIndex)
		}
		s.revealed = true
	}

	return s, cmd
}

func (s *QuizScreen) updateResult(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.resultFocus = 0
	case "right", "l", "tab":
		s.resultFocus = 1
	case "r":
		s.restart()
	case "m":
		s.backToMenu()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		retry, menu := s.resultButtons()
		var cmds []tea.Cmd
		_, cmd := retry.Update(msg)
		cmds = append(cmds, cmd)
		_, cmd = menu.Update(msg)
		cmds = append(cmds, cmd)
		return s, tea.Batch(cmds...)
	}

	return s, nil
}

// restart repeats the run with the same selection: back to the menu, then
// a fresh start. Random drills draw a fresh sample of the same size.
func (s *QuizScreen) restart() {
	cat := s.session.Category
	s.session.Reset()

	var err error
	if s.randomN > 0 {
		err = s.session.StartRandom(s.cat, s.randomN)
	} else {
		err = s.session.Start(s.cat, cat)
	}
	if err != nil {
		return
	}
	s.loadCurrent()
}

// backToMenu discards the run and returns to the category picker.
func (s *QuizScreen) backToMenu() {
	s.session.Reset()
	s.cursor = 0
	s.resultFocus = 0
}

// resultButtons builds the two result-screen buttons; the focused one is
// active and responds to enter.
func (s *QuizScreen) resultButtons() (components.Button, components.Button) {
	retry := components.NewButton("Try Again", s.resultFocus == 0, func() tea.Cmd {
		s.restart()
		return nil
	})
	menu := components.NewButton("Categories", s.resultFocus == 1, func() tea.Cmd {
		s.backToMenu()
		return nil
	})
	return retry, menu
}

// loadCurrent rebuilds the multi-choice component for the current question.
func (s *QuizScreen) loadCurrent() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	s.revealed = false
}

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase {
	case quiz.PhaseMenu:
		return s.viewMenu(width)
	case quiz.PhaseActive:
		return s.viewActive(width)
	case quiz.PhaseResult:
		return s.viewResult(width)
	}
	return ""
}

func (s *QuizScreen) viewMenu(width int) string {
	var sections []string

	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		PaddingLeft(4).
		Render("Choose a category"))
	sections = append(sections, "")

	for i, ch := range s.choices {
		card := ch.label + "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(ch.detail)

		style := theme.Unselected
		if i == s.cursor && !s.customMode {
			style = theme.Selected
		}
		sections = append(sections, lipgloss.NewStyle().
			PaddingLeft(4).
			Render(style.Width(44).Render(card)))
	}

	sections = append(sections, "")
	if s.customMode {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Random drill, how many questions? ")
		sections = append(sections, lipgloss.NewStyle().
			PaddingLeft(4).
			Render(prompt+s.customN.View()))
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(4).
			Render("Press r for a random drill of custom size"))
	}

	if s.startErr != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			PaddingLeft(4).
			Render(s.startErr))
	}

	return strings.Join(sections, "\n")
}

func (s *QuizScreen) viewActive(width int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	contentWidth := width - 8
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	sections = append(sections, "")

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.session.Index+1, len(s.session.Questions)),
		float64(s.session.Index)/float64(len(s.session.Questions)),
		false,
		contentWidth,
	)
	sections = append(sections, lipgloss.NewStyle().PaddingLeft(4).Render(progress.View()))
	sections = append(sections, "")

	badges := components.DifficultyBadge(q.Difficulty)
	if q.Category != catalog.CategoryNone {
		badges += "  " + components.CategoryBadge(q.Category)
	}
	sections = append(sections, lipgloss.NewStyle().PaddingLeft(4).Render(badges))
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		PaddingLeft(4).
		Width(contentWidth).
		Render(s.choice.View()))

	if s.revealed {
		var verdict string
		if s.choice.IsCorrect() {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
		} else {
			verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Not quite.")
		}
		sections = append(sections, lipgloss.NewStyle().PaddingLeft(4).Render(verdict))

		if q.Explanation != "" {
			sections = append(sections, "")
			explanation := theme.Card.
				Width(contentWidth).
				Render(lipgloss.NewStyle().Foreground(theme.Text).Render(q.Explanation))
			sections = append(sections, lipgloss.NewStyle().PaddingLeft(4).Render(explanation))
		}

		sections = append(sections, "")
		next := "next question"
		if s.session.Index == len(s.session.Questions)-1 {
			next = "results"
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(4).
			Render("Press Enter for "+next))
	}

	return strings.Join(sections, "\n")
}

func (s *QuizScreen) viewResult(width int) string {
	summary := s.session.Results()

	contentWidth := width - 8
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		PaddingLeft(4).
		Render("Quiz complete!"))
	sections = append(sections, "")

	grade := lipgloss.NewStyle().
		Foreground(gradeColor(summary.Grade)).
		Bold(true).
		Render(strings.ToUpper(string(summary.Grade)))
	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d / %d correct", summary.Correct, summary.Total))

	card := fmt.Sprintf("%s\n\n%s", grade, score)
	sections = append(sections, lipgloss.NewStyle().
		PaddingLeft(4).
		Render(theme.Card.Width(44).Align(lipgloss.Center).Render(card)))
	sections = append(sections, "")

	bar := components.NewProgressBar("Score", float64(summary.Percentage)/100, true, contentWidth)
	sections = append(sections, lipgloss.NewStyle().PaddingLeft(4).Render(bar.View()))
	sections = append(sections, "")

	tally := fmt.Sprintf("Correct: %d   Incorrect: %d   Unanswered: %d",
		summary.Correct, summary.Incorrect, summary.Unanswered)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(4).
		Render(tally))
	sections = append(sections, "")

	retry, menu := s.resultButtons()
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, retry.View(), "  ", menu.View())
	sections = append(sections, lipgloss.NewStyle().PaddingLeft(4).Render(buttons))

	return strings.Join(sections, "\n")
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows quiz progress in the header while a quiz is running.
func (s *QuizScreen) Status() string {
	if s.session.Phase != quiz.PhaseActive {
		return ""
	}
	return fmt.Sprintf("%d/%d  ", s.session.Index+1, len(s.session.Questions))
}

// KeyHints returns the key binding hints for the footer.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase {
	case quiz.PhaseActive:
		if s.revealed {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Continue"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case quiz.PhaseResult:
		return []layout.KeyHint{
			{Key: "←→", Description: "Select"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "q", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// gradeColor maps a grade to its display color.
func gradeColor(g quiz.Grade) color.Color {
	switch g {
	case quiz.GradeExcellent:
		return theme.Success
	case quiz.GradeGood:
		return theme.Primary
	case quiz.GradePassing:
		return theme.Warning
	default:
		return theme.Error
	}
}
