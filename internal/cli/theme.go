package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/perchui/perch/pkg/errors"
)

// =============================================================================
// Theme
// =============================================================================

// Theme configures the demo colors, loadable from a TOML file:
//
//	accent = "36"
//
//	[reference]
//	foreground = "255"
//	border = "240"
//
//	[floating]
//	foreground = "0"
//	background = "36"
type Theme struct {
	Accent    string      `toml:"accent"`
	Reference StyleConfig `toml:"reference"`
	Floating  StyleConfig `toml:"floating"`
}

// StyleConfig is the per-element color block of a theme file. Empty fields
// leave the attribute unset.
type StyleConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Border     string `toml:"border"`
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Accent: "36",
		Reference: StyleConfig{
			Foreground: "255",
			Border:     "240",
		},
		Floating: StyleConfig{
			Foreground: "0",
			Background: "36",
		},
	}
}

// LoadTheme reads a TOML theme file. Fields absent from the file keep the
// default palette's values.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read theme %s", path)
	}

	theme := DefaultTheme()
	if err := toml.Unmarshal(data, &theme); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse theme %s", path)
	}
	return theme, nil
}

// =============================================================================
// Styles
// =============================================================================

func (s StyleConfig) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	return style
}

// referenceStyle renders the anchor button.
func (t Theme) referenceStyle(focused bool) lipgloss.Style {
	style := t.Reference.style().Padding(0, 1).Border(lipgloss.RoundedBorder())
	border := t.Reference.Border
	if focused {
		border = t.Accent
	}
	if border != "" {
		style = style.BorderForeground(lipgloss.Color(border))
	}
	return style
}

// floatingStyle renders the floating panel.
func (t Theme) floatingStyle() lipgloss.Style {
	return t.Floating.style().Padding(0, 1)
}

// dimStyle renders secondary text.
func (t Theme) dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
}

// titleStyle renders headings.
func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Accent))
}
