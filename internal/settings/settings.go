package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Binary invoked when the settings file names no other.
const defaultDockerBin = "docker"

// Optional user configuration for the tool.
type Settings struct {
	Docker string `yaml:"docker,omitempty"` // Docker binary to invoke.
	Prune  Prune  `yaml:"prune,omitempty"`  // Cleanup behavior.
}

// Cleanup behavior knobs.
type Prune struct {

	// How to treat recorded identifiers whose image no longer exists:
	// "prune" (drop them, the default) or "fail" (abort the run).
	MissingImages string `yaml:"missing_images,omitempty"`
}

// Returns the built-in defaults.
func Default() Settings {
	return Settings{Docker: defaultDockerBin}
}

// Loads settings from the given path.
//
// A missing file yields the defaults; a present file is decoded over them,
// so unset keys keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.Docker == "" {
		s.Docker = defaultDockerBin
	}
	return s, nil
}
