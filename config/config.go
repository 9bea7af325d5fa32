// Package config loads the settings shared by the serving surfaces from an
// optional yaml file with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/improperdecoherence/chordlab/note"
)

// DefaultFile is looked for in the working directory when no path is given.
const DefaultFile = "chordlab.yml"

// Config carries the tunables of the serving surfaces. The engine itself
// takes everything as explicit arguments.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// Arity is the modifier combination arity of the chord database.
	Arity int `yaml:"arity"`
	// Style is the default note spelling, "sharp" or "flat".
	Style string `yaml:"style"`
	// Distance is the default match distance.
	Distance int `yaml:"distance"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Addr:     ":8080",
		Arity:    2,
		Style:    "flat",
		Distance: 0,
	}
}

// Load reads the configuration: defaults, then the yaml file (a missing
// default file is fine, a missing explicit path is not), then environment
// variables CHORDLAB_ADDR, CHORDLAB_ARITY, CHORDLAB_STYLE and
// CHORDLAB_DISTANCE.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	dat, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(dat, &cfg); err != nil {
			return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// defaults apply
	default:
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if v := os.Getenv("CHORDLAB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CHORDLAB_STYLE"); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv("CHORDLAB_ARITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("CHORDLAB_ARITY: %q is not an integer", v)
		}
		cfg.Arity = n
	}
	if v := os.Getenv("CHORDLAB_DISTANCE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("CHORDLAB_DISTANCE: %q is not an integer", v)
		}
		cfg.Distance = n
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the engine would refuse later anyway.
func (c Config) Validate() error {
	if _, err := note.ParseStyle(c.Style); err != nil {
		return err
	}
	if c.Arity < 1 {
		return fmt.Errorf("arity must be at least 1, got %d", c.Arity)
	}
	if c.Distance < 0 {
		return fmt.Errorf("distance must be positive or zero, got %d", c.Distance)
	}
	return nil
}

// NoteStyle returns the parsed spelling style.
func (c Config) NoteStyle() note.Style {
	style, _ := note.ParseStyle(c.Style)
	return style
}
