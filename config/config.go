// Package config loads the table rules from a YAML file, falling back to
// the house defaults when no file is given.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the fixed table configuration the engine runs with
type Rules struct {
	InitialBankroll    float64   `yaml:"initialBankroll"`
	MinBet             float64   `yaml:"minBet"`
	DeckCount          int       `yaml:"deckCount"`
	ReshuffleThreshold float64   `yaml:"reshuffleThreshold"`
	SpotCount          int       `yaml:"spotCount"`
	ChipValues         []float64 `yaml:"chipValues"`
}

// Default returns the standard seven-spot table rules
func Default() Rules {
	return Rules{
		InitialBankroll:    2500,
		MinBet:             5,
		DeckCount:          6,
		ReshuffleThreshold: 0.25,
		SpotCount:          7,
		ChipValues:         []float64{5, 25, 100, 500, 1000},
	}
}

// Load reads rules from a YAML file. Fields missing from the file keep
// their default values.
func Load(path string) (Rules, error) {
	rules := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}

	return rules, nil
}

// Validate rejects rule sets the engine cannot run with
func (r Rules) Validate() error {
	if r.InitialBankroll <= 0 {
		return fmt.Errorf("initialBankroll must be positive, got %v", r.InitialBankroll)
	}
	if r.MinBet <= 0 {
		return fmt.Errorf("minBet must be positive, got %v", r.MinBet)
	}
	if r.DeckCount <= 0 {
		return fmt.Errorf("deckCount must be positive, got %d", r.DeckCount)
	}
	if r.ReshuffleThreshold <= 0 || r.ReshuffleThreshold >= 1 {
		return fmt.Errorf("reshuffleThreshold must be between 0 and 1, got %v", r.ReshuffleThreshold)
	}
	if r.SpotCount <= 0 {
		return fmt.Errorf("spotCount must be positive, got %d", r.SpotCount)
	}
	if len(r.ChipValues) == 0 {
		return fmt.Errorf("at least one chip value is required")
	}
	for _, chip := range r.ChipValues {
		if chip <= 0 {
			return fmt.Errorf("chip values must be positive, got %v", chip)
		}
	}
	return nil
}
