package scoring

import (
	"math"
	"sort"
)

type ArchetypeMatch struct {
	ArchetypeID string
	Distance    float64
	Percentage  float64
}

// Match ranks archetypes by similarity to scores, highest percentage first.
// Equal percentages fall back to catalog order, then archetype id.
// An empty archetype list yields an empty, non-nil slice.
func (m Model) Match(scores AxisScores, archetypes []Archetype) []ArchetypeMatch {
	if len(archetypes) == 0 {
		return []ArchetypeMatch{}
	}

	maxDistance := m.MaxDistance()
	type ranked struct {
		match ArchetypeMatch
		order int
	}
	out := make([]ranked, 0, len(archetypes))

	for _, a := range archetypes {
		var sum float64
		for _, axis := range m.Axes {
			d := scores[axis] - a.Target[axis]
			sum += d * d
		}
		distance := math.Sqrt(sum)
		similarity := (1 - distance/maxDistance) * 100

		out = append(out, ranked{
			match: ArchetypeMatch{
				ArchetypeID: a.ID,
				Distance:    distance,
				Percentage:  clamp(round(similarity, 1), 0, 100),
			},
			order: a.Order,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].match.Percentage != out[j].match.Percentage {
			return out[i].match.Percentage > out[j].match.Percentage
		}
		if out[i].order != out[j].order {
			return out[i].order < out[j].order
		}
		return out[i].match.ArchetypeID < out[j].match.ArchetypeID
	})

	matches := make([]ArchetypeMatch, len(out))
	for i, r := range out {
		matches[i] = r.match
	}
	return matches
}

// Evaluate runs Normalize then Match.
func (m Model) Evaluate(answers AnswerSet, archetypes []Archetype) (AxisScores, []ArchetypeMatch) {
	scores := m.Normalize(answers)
	return scores, m.Match(scores, archetypes)
}
