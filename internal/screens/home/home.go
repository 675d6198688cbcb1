package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/typedrill/typedrill/internal/catalog"
	"github.com/typedrill/typedrill/internal/router"
	"github.com/typedrill/typedrill/internal/screen"
	quizscreen "github.com/typedrill/typedrill/internal/screens/quiz"
	topicsscreen "github.com/typedrill/typedrill/internal/screens/topics"
	"github.com/typedrill/typedrill/internal/ui/components"
	"github.com/typedrill/typedrill/internal/ui/theme"
)

const banner = `
 ████████╗██╗   ██╗██████╗ ███████╗██████╗ ██████╗ ██╗██╗     ██╗
 ╚══██╔══╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗██╔══██╗██║██║     ██║
    ██║    ╚████╔╝ ██████╔╝█████╗  ██║  ██║██████╔╝██║██║     ██║
    ██║     ╚██╔╝  ██╔═══╝ ██╔══╝  ██║  ██║██╔══██╗██║██║     ██║
    ██║      ██║   ██║     ███████╗██████╔╝██║  ██║██║███████╗███████╗
    ╚═╝      ╚═╝   ╚═╝     ╚══════╝╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

// quickDrillSize is the number of randomly sampled questions in a Quick Drill.
const quickDrillSize = 5

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "TypeScript Basics",
			Description: "Core language topics with examples",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: topicsscreen.New(catalog.CategoryBasics)}
				}
			},
		},
		{
			Label:       "Advanced Topics",
			Description: "Generics, guards, utility types and more",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: topicsscreen.New(catalog.CategoryAdvanced)}
				}
			},
		},
		{
			Label:       "Take a Quiz",
			Description: "Pick a category and test yourself",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(catalog.Default())}
				}
			},
		},
		{
			Label:       "Quick Drill",
			Description: "5 random questions from the whole bank",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.NewRandom(catalog.Default(), quickDrillSize)}
				}
			},
		},
		{
			Label: "Exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.TrimPrefix(banner, "\n"))
	sections = append(sections, title)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Learn TypeScript from your terminal")
	sections = append(sections, tagline)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
