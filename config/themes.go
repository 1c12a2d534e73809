package config

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// Theme is the cosmetic and behavioral parameter set of one world.
type Theme struct {
	Name   string `yaml:"name"`
	Sky    int    `yaml:"sky"`
	Ground int    `yaml:"ground"`
	Pipe   int    `yaml:"pipe"`
	Block  int    `yaml:"block"`
	Water  *int   `yaml:"water"`
	// Enemy is the marker code the generator places for this world.
	Enemy   string `yaml:"enemy"`
	Hazards bool   `yaml:"hazards"`
}

// HasWater reports whether swimmers can live in this world.
func (t Theme) HasWater() bool {
	return t.Water != nil
}

type themeFile struct {
	Worlds map[int]Theme `yaml:"worlds"`
}

// Themes maps world number (1-8) to its theme.
var Themes map[int]Theme

// ParseThemes decodes a theme table document.
func ParseThemes(data []byte) (map[int]Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}
	if len(f.Worlds) == 0 {
		return nil, fmt.Errorf("parse themes: no worlds defined")
	}
	for world, t := range f.Worlds {
		if t.Enemy == "" {
			return nil, fmt.Errorf("parse themes: world %d has no enemy", world)
		}
	}
	return f.Worlds, nil
}

// ThemeFor returns the theme of a world, falling back to world 1.
func ThemeFor(world int) Theme {
	if t, ok := Themes[world]; ok {
		return t
	}
	return Themes[1]
}

func init() {
	themes, err := ParseThemes(themesYAML)
	if err != nil {
		log.Fatalf("embedded themes: %v", err)
	}
	Themes = themes
}
