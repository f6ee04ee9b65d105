package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme colors the three body categories and the stats panel.
type Theme struct {
	Name     string
	Heavy    lipgloss.Color
	Negative lipgloss.Color
	Positive lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
}

var (
	// ThemeClassic draws negatives green and positives red.
	ThemeClassic = Theme{
		Name:     "classic",
		Heavy:    lipgloss.Color("#ffffff"),
		Negative: lipgloss.Color("#00ff00"),
		Positive: lipgloss.Color("#ff0000"),
		Accent:   lipgloss.Color("#00ccff"),
		Muted:    lipgloss.Color("#888899"),
	}

	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Heavy:    lipgloss.Color("#ffff00"),
		Negative: lipgloss.Color("#00ffff"),
		Positive: lipgloss.Color("#ff00ff"),
		Accent:   lipgloss.Color("#ff00ff"),
		Muted:    lipgloss.Color("#666666"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Heavy:    lipgloss.Color("#ffffff"),
		Negative: lipgloss.Color("#0088ff"),
		Positive: lipgloss.Color("#ffaa00"),
		Accent:   lipgloss.Color("#cccccc"),
		Muted:    lipgloss.Color("#888888"),
	}
)

var themes = []Theme{ThemeClassic, ThemeCyberpunk, ThemeMinimal}

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ThemeIndex returns the position of the named theme. An empty name selects
// the first theme.
func ThemeIndex(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, t := range themes {
		if t.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

// BodyStyles returns the canvas styles for a theme.
func (t Theme) BodyStyles() map[Category]lipgloss.Style {
	return map[Category]lipgloss.Style{
		Heavy:    lipgloss.NewStyle().Foreground(t.Heavy).Bold(true),
		Negative: lipgloss.NewStyle().Foreground(t.Negative),
		Positive: lipgloss.NewStyle().Foreground(t.Positive),
	}
}
