package ui

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// Styles holds the lipgloss styles for zml's own messages
type Styles struct {
	WarningLabel lipgloss.Style
	ErrorLabel   lipgloss.Style
	Location     lipgloss.Style
}

// LoadStyles builds the message styles from the embedded definitions
func LoadStyles() (*Styles, error) {
	var cfg stylesConfig
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded styles: %w", err)
	}

	build := func(name string) lipgloss.Style {
		def := cfg.Styles[name]
		style := lipgloss.NewStyle().Bold(def.Bold)

		if c, ok := cfg.Colors[def.Foreground]; ok {
			style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		return style
	}

	return &Styles{
		WarningLabel: build("warningLabel"),
		ErrorLabel:   build("errorLabel"),
		Location:     build("location"),
	}, nil
}

// defaultStyles panics only if the embedded styles file is broken, which
// is a build defect, not a runtime condition.
func defaultStyles() *Styles {
	styles, err := LoadStyles()
	if err != nil {
		panic(err)
	}
	return styles
}
