package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colors around the canvas.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
}

var (
	ThemeCosmic = Theme{
		Name:      "cosmic",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Muted:     lipgloss.Color("#666688"),
	}

	ThemeNightSky = Theme{
		Name:      "nightsky",
		Primary:   lipgloss.Color("#e0e8ff"),
		Secondary: lipgloss.Color("#8899cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Muted:     lipgloss.Color("#445577"),
	}

	ThemeConcert = Theme{
		Name:      "concert",
		Primary:   lipgloss.Color("#ff4444"),
		Secondary: lipgloss.Color("#ff8800"),
		Accent:    lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#884444"),
	}

	ThemeGalaxy = Theme{
		Name:      "galaxy",
		Primary:   lipgloss.Color("#9966ff"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Muted:     lipgloss.Color("#554488"),
	}

	ThemeFractal = Theme{
		Name:      "fractal",
		Primary:   lipgloss.Color("#00ff88"),
		Secondary: lipgloss.Color("#00cc66"),
		Accent:    lipgloss.Color("#88ffcc"),
		Muted:     lipgloss.Color("#336644"),
	}

	Themes = []Theme{
		ThemeCosmic,
		ThemeNightSky,
		ThemeConcert,
		ThemeGalaxy,
		ThemeFractal,
	}
)

// GetTheme returns the theme matching name, defaulting to cosmic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCosmic
}

// ThemeNames lists the available theme names in order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
