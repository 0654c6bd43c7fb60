package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDirection(t *testing.T) {
	m := mustModel(t, 4)

	for v := 0; v <= 4; v++ {
		answers := AnswerSet{1: {QuestionID: 1, RawValue: v, Weights: Weights{"HP": 1}, Direction: Reverse}}
		assert.Equal(t, float64(4-v), m.Normalize(answers)["HP"], "reverse keyed value %d", v)

		answers[1] = Answer{QuestionID: 1, RawValue: v, Weights: Weights{"HP": 1}, Direction: Forward}
		assert.Equal(t, float64(v), m.Normalize(answers)["HP"], "forward keyed value %d", v)
	}
}

func TestNormalizeZeroWeightAxis(t *testing.T) {
	m := mustModel(t, 4)
	answers := AnswerSet{
		1: {QuestionID: 1, RawValue: 3, Weights: Weights{"HP": 0.4, "CI": 0.6}, Direction: Forward},
		2: {QuestionID: 2, RawValue: 1, Weights: Weights{"HP": 1, "WP": 0}, Direction: Reverse},
	}

	scores := m.Normalize(answers)

	assert.Equal(t, 0.0, scores["WP"])
	assert.Equal(t, 0.0, scores["HF"])
	assert.Len(t, scores, 4)
}

func TestNormalizeEmptyAnswerSet(t *testing.T) {
	scores := mustModel(t, 4).Normalize(AnswerSet{})
	assert.Equal(t, target(0, 0, 0, 0), scores)
}

func TestNormalizeWeightedAverage(t *testing.T) {
	m := mustModel(t, 4)
	answers := AnswerSet{
		1: {QuestionID: 1, RawValue: 4, Weights: Weights{"HP": 0.4, "CI": 0.6}, Direction: Forward},
		7: {QuestionID: 7, RawValue: 4, Weights: Weights{"HP": 1.0}, Direction: Reverse},
	}

	scores := m.Normalize(answers)

	// HP: (4*0.4 + 0*1.0) / (4*0.4 + 4*1.0) * 4 = 1.6/5.6*4
	assert.Equal(t, 1.14, scores["HP"])
	assert.Equal(t, 4.0, scores["CI"])
}

func TestNormalizePartialSetSpansFullScale(t *testing.T) {
	m := mustModel(t, 4)
	answers := AnswerSet{
		3: {QuestionID: 3, RawValue: 4, Weights: Weights{"HP": 0.3, "WP": 0.5, "HF": 0.2}, Direction: Forward},
	}

	scores := m.Normalize(answers)

	assert.Equal(t, 4.0, scores["HP"])
	assert.Equal(t, 4.0, scores["WP"])
	assert.Equal(t, 4.0, scores["HF"])
	assert.Equal(t, 0.0, scores["CI"])
}

func TestNormalizeIgnoresAxesOutsideModel(t *testing.T) {
	m := mustModel(t, 4)
	answers := AnswerSet{1: {QuestionID: 1, RawValue: 2, Weights: Weights{"XX": 5, "HP": 1}, Direction: Forward}}

	scores := m.Normalize(answers)

	assert.Len(t, scores, 4)
	assert.Equal(t, 2.0, scores["HP"])
}

func TestNormalizeBounds(t *testing.T) {
	for _, scaleMax := range []int{4, 5} {
		m := mustModel(t, scaleMax)
		weights := []Weights{
			{"HP": 0.4, "CI": 0.6},
			{"HP": 0.3, "WP": 0.7},
			{"WP": 1},
			{"WP": 0.3, "HF": 0.7},
			{"HP": 0.6, "HF": 0.2, "CI": 0.2},
		}
		for v := 0; v <= scaleMax; v++ {
			answers := AnswerSet{}
			for i, w := range weights {
				dir := Forward
				if i%2 == 1 {
					dir = Reverse
				}
				answers[i+1] = Answer{QuestionID: i + 1, RawValue: (v + i) % (scaleMax + 1), Weights: w, Direction: dir}
			}
			for axis, s := range m.Normalize(answers) {
				assert.GreaterOrEqual(t, s, 0.0, "axis %s", axis)
				assert.LessOrEqual(t, s, float64(scaleMax), "axis %s", axis)
			}
		}
	}
}

func TestNormalizeRoundsToTwoPlaces(t *testing.T) {
	m := mustModel(t, 4)
	answers := AnswerSet{
		1: {QuestionID: 1, RawValue: 1, Weights: Weights{"HP": 1}, Direction: Forward},
		2: {QuestionID: 2, RawValue: 1, Weights: Weights{"HP": 1}, Direction: Forward},
		3: {QuestionID: 3, RawValue: 2, Weights: Weights{"HP": 1}, Direction: Forward},
	}

	// 4/12*4 = 1.3333...
	assert.Equal(t, 1.33, m.Normalize(answers)["HP"])
}
