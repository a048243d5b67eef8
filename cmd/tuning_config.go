package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/courtsim/courtsim/sim"
)

// LoadTuning reads a tuning.yaml into sim.Tuning with strict field checking,
// so a typo in a knob name fails loudly instead of silently using a default.
// The file only needs the sections it overrides; missing sections keep their
// built-in defaults.
func LoadTuning(path string) (sim.Tuning, error) {
	tuning := sim.DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("read tuning file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&tuning); err != nil {
		return tuning, fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return tuning, nil
}
