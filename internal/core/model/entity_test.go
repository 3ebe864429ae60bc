package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePropertiesWidensNumbers(t *testing.T) {
	props, err := NormalizeProperties(map[string]any{
		"tier":     "S",
		"curated":  true,
		"mentions": 12,
		"score":    float32(1.5),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"tier":     "S",
		"curated":  true,
		"mentions": float64(12),
		"score":    float64(1.5),
	}, props)
}

func TestNormalizePropertiesEmpty(t *testing.T) {
	props, err := NormalizeProperties(nil)
	require.NoError(t, err)
	assert.Nil(t, props)
}

func TestNormalizePropertiesRejectsNestedValues(t *testing.T) {
	_, err := NormalizeProperties(map[string]any{
		"effects": []any{"crit"},
	})
	assert.Error(t, err)

	_, err = NormalizeProperties(map[string]any{
		"stats": map[string]any{"atk": 10},
	})
	assert.Error(t, err)
}
