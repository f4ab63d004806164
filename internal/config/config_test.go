package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		goodtill  Goodtill
		wantError string
	}{
		{
			name:     "both tokens present",
			goodtill: Goodtill{FoodToken: "a", BarToken: "b"},
		},
		{
			name:      "missing food token",
			goodtill:  Goodtill{BarToken: "b"},
			wantError: "FOOD_TOKEN",
		},
		{
			name:      "missing both tokens names both",
			goodtill:  Goodtill{},
			wantError: "FOOD_TOKEN, BAR_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Goodtill: tt.goodtill}

			err := cfg.Validate()

			if tt.wantError == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
