package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	rules := Default()

	assert.Equal(t, 2500.0, rules.InitialBankroll)
	assert.Equal(t, 5.0, rules.MinBet)
	assert.Equal(t, 6, rules.DeckCount)
	assert.Equal(t, 0.25, rules.ReshuffleThreshold)
	assert.Equal(t, 7, rules.SpotCount)
	assert.Equal(t, []float64{5, 25, 100, 500, 1000}, rules.ChipValues)
	require.NoError(t, rules.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "initialBankroll: 10000\ndeckCount: 8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, rules.InitialBankroll)
	assert.Equal(t, 8, rules.DeckCount)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5.0, rules.MinBet)
	assert.Equal(t, 7, rules.SpotCount)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minBet: -1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero bankroll", func(r *Rules) { r.InitialBankroll = 0 }},
		{"negative min bet", func(r *Rules) { r.MinBet = -5 }},
		{"zero decks", func(r *Rules) { r.DeckCount = 0 }},
		{"threshold too high", func(r *Rules) { r.ReshuffleThreshold = 1 }},
		{"threshold zero", func(r *Rules) { r.ReshuffleThreshold = 0 }},
		{"no spots", func(r *Rules) { r.SpotCount = 0 }},
		{"no chips", func(r *Rules) { r.ChipValues = nil }},
		{"negative chip", func(r *Rules) { r.ChipValues = []float64{5, -25} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := Default()
			tt.mutate(&rules)
			assert.Error(t, rules.Validate())
		})
	}
}
