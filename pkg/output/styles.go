package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/symseek/pkg/errors"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// StylesConfig represents a styles override file
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// styleRegistry maps semantic names to lipgloss styles. Adaptive
// colors adjust to light and dark terminal themes.
var styleRegistry = map[string]lipgloss.Style{
	"origin": lipgloss.NewStyle().
		Bold(true),
	"symlink": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "31", Dark: "86"}),
	"wrapper": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"}),
	"terminal": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "78"}).
		Bold(true),
	"muted": lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "241"}),
}

// Style returns the registered style for a semantic name; unknown
// names get an unstyled default
func Style(name string) lipgloss.Style {
	if s, ok := styleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// LoadStyles applies a user styles override file on top of the
// defaults. Unknown style names are accepted and registered.
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles at %s", path)
	}

	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse styles at %s", path)
	}

	for name, def := range cfg.Styles {
		styleRegistry[name] = buildStyle(def, cfg.Colors)
	}
	return nil
}

// buildStyle converts a YAML style definition to a lipgloss style. A
// foreground naming an entry in colors becomes adaptive; anything else
// is passed through as a literal color.
func buildStyle(def StyleDef, colors map[string]ColorDef) lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if def.Foreground != "" {
		if c, ok := colors[def.Foreground]; ok {
			s = s.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		} else {
			s = s.Foreground(lipgloss.Color(def.Foreground))
		}
	}
	return s
}
