package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var fourAxes = []AxisKey{"HP", "WP", "HF", "CI"}

func mustModel(t *testing.T, scaleMax int) Model {
	t.Helper()
	m, err := NewModel(fourAxes, scaleMax)
	require.NoError(t, err)
	return m
}

func target(hp, wp, hf, ci float64) AxisScores {
	return AxisScores{"HP": hp, "WP": wp, "HF": hf, "CI": ci}
}

func seedArchetypes() []Archetype {
	return []Archetype{
		{ID: "faithful", Title: "Faithful", Target: target(4, 4, 4, 4), Order: 1},
		{ID: "harmonizer", Title: "Harmonizer", Target: target(3, 3, 2, 3), Order: 2},
		{ID: "questioner", Title: "Questioner", Target: target(2, 3, 1, 2), Order: 3},
		{ID: "keeper", Title: "Keeper", Target: target(4, 1, 4, 4), Order: 4},
		{ID: "independent", Title: "Independent", Target: target(0, 2, 0, 0), Order: 5},
	}
}
