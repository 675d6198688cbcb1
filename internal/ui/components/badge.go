package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/typedrill/typedrill/internal/catalog"
	"github.com/typedrill/typedrill/internal/ui/theme"
)

// DifficultyBadge renders a colored pill for a question difficulty.
func DifficultyBadge(d catalog.Difficulty) string {
	var col color.Color
	switch d {
	case catalog.DifficultyEasy:
		col = theme.Success
	case catalog.DifficultyMedium:
		col = theme.Warning
	case catalog.DifficultyHard:
		col = theme.Error
	default:
		col = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(col).
		Bold(true).
		Padding(0, 1).
		Render(catalog.DifficultyDisplayName(d))
}

// CategoryBadge renders a colored pill for a question category.
func CategoryBadge(c catalog.Category) string {
	var col color.Color
	switch c {
	case catalog.CategoryBasics:
		col = theme.Primary
	case catalog.CategoryAdvanced:
		col = theme.Secondary
	default:
		col = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(col).
		Bold(true).
		Padding(0, 1).
		Render(catalog.CategoryDisplayName(c))
}
