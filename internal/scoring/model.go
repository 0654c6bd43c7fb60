// Package scoring turns Likert answers into normalized axis scores and ranks
// archetypes by their Euclidean distance to those scores.
//
// Everything here is pure and synchronous. Catalog data arrives as explicit
// parameters; nothing is read from process-wide state.
package scoring

import (
	"fmt"
	"math"
	"strings"
)

type AxisKey string

// Model fixes the axis set and answer scale of one catalog generation.
// Answers range over [0, ScaleMax] and so do normalized scores.
type Model struct {
	Axes     []AxisKey
	ScaleMax int
}

func NewModel(axes []AxisKey, scaleMax int) (Model, error) {
	if len(axes) == 0 {
		return Model{}, fmt.Errorf("%w: axis set is empty", ErrInvalidModel)
	}
	if scaleMax < 1 {
		return Model{}, fmt.Errorf("%w: scale max must be at least 1, got %d", ErrInvalidModel, scaleMax)
	}

	seen := make(map[AxisKey]struct{}, len(axes))
	out := make([]AxisKey, 0, len(axes))
	for _, a := range axes {
		key := AxisKey(strings.TrimSpace(string(a)))
		if key == "" {
			return Model{}, fmt.Errorf("%w: blank axis key", ErrInvalidModel)
		}
		if _, dup := seen[key]; dup {
			return Model{}, fmt.Errorf("%w: duplicate axis %q", ErrInvalidModel, key)
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return Model{Axes: out, ScaleMax: scaleMax}, nil
}

// ParseAxes splits a comma separated axis list such as "HP,WP,HF,CI".
func ParseAxes(s string) []AxisKey {
	var axes []AxisKey
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			axes = append(axes, AxisKey(p))
		}
	}
	return axes
}

func (m Model) HasAxis(axis AxisKey) bool {
	for _, a := range m.Axes {
		if a == axis {
			return true
		}
	}
	return false
}

// MaxDistance is the distance between opposite corners of the score
// hypercube: sqrt(len(Axes) * ScaleMax^2).
func (m Model) MaxDistance() float64 {
	s := float64(m.ScaleMax)
	return math.Sqrt(float64(len(m.Axes)) * s * s)
}

// Direction marks a question as normally (+1) or reverse (-1) keyed.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

func (d Direction) Valid() bool {
	return d == Forward || d == Reverse
}

// Weights is a per-axis loading. A missing axis weighs 0.
type Weights map[AxisKey]float64

func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// AxisScores maps every axis of a Model to a value in [0, ScaleMax].
type AxisScores map[AxisKey]float64

// Vector returns the scores in axis order. Missing axes read as 0.
func (s AxisScores) Vector(m Model) []float64 {
	out := make([]float64, len(m.Axes))
	for i, a := range m.Axes {
		out[i] = s[a]
	}
	return out
}

// ScoresFromVector is the inverse of Vector.
func ScoresFromVector(m Model, v []float64) (AxisScores, error) {
	if len(v) != len(m.Axes) {
		return nil, fmt.Errorf("%w: vector has %d dimensions, model has %d axes", ErrInvalidArchetype, len(v), len(m.Axes))
	}
	out := make(AxisScores, len(v))
	for i, a := range m.Axes {
		out[a] = v[i]
	}
	return out, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
