package scoring

import "sort"

// Answer is one response with the question's weights and direction as they
// were when the answer was given.
type Answer struct {
	QuestionID int
	RawValue   int
	Weights    Weights
	Direction  Direction
}

// AnswerSet is keyed by question id; answering again replaces the entry.
type AnswerSet map[int]Answer

func (a Answer) adjusted(scaleMax int) float64 {
	if a.Direction == Reverse {
		return float64(scaleMax - a.RawValue)
	}
	return float64(a.RawValue)
}

// Normalize computes per-axis scores on the [0, ScaleMax] scale.
//
// The denominator only counts the answered questions, so a partial answer set
// still spans the full scale. An axis with no weight among the answers scores 0.
func (m Model) Normalize(answers AnswerSet) AxisScores {
	raw := make(map[AxisKey]float64, len(m.Axes))
	maxPossible := make(map[AxisKey]float64, len(m.Axes))
	scaleMax := float64(m.ScaleMax)

	// fixed summation order keeps results bit-identical across calls
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		a := answers[id]
		v := a.adjusted(m.ScaleMax)
		for _, axis := range m.Axes {
			w := a.Weights[axis]
			raw[axis] += v * w
			maxPossible[axis] += scaleMax * w
		}
	}

	scores := make(AxisScores, len(m.Axes))
	for _, axis := range m.Axes {
		if maxPossible[axis] == 0 {
			scores[axis] = 0
			continue
		}
		scores[axis] = round(raw[axis]/maxPossible[axis]*scaleMax, 2)
	}
	return scores
}
