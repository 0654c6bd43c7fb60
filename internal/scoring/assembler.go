package scoring

// RankedArchetype joins a match with the archetype's display metadata.
type RankedArchetype struct {
	Archetype
	Distance   float64
	Percentage float64
}

// Ranking is the display projection of a match list. It is derived on read
// and never stored.
type Ranking []RankedArchetype

// Assemble keeps match order and drops matches whose archetype has no
// metadata. The match list itself is left untouched.
func Assemble(matches []ArchetypeMatch, metadata map[string]Archetype) Ranking {
	out := make(Ranking, 0, len(matches))
	for _, m := range matches {
		a, ok := metadata[m.ArchetypeID]
		if !ok {
			continue
		}
		out = append(out, RankedArchetype{
			Archetype:  a,
			Distance:   m.Distance,
			Percentage: m.Percentage,
		})
	}
	return out
}

func (r Ranking) Primary() (RankedArchetype, bool) {
	if len(r) == 0 {
		return RankedArchetype{}, false
	}
	return r[0], true
}

// Similar returns up to n entries following the primary one.
func (r Ranking) Similar(n int) Ranking {
	if len(r) <= 1 || n <= 0 {
		return Ranking{}
	}
	end := 1 + n
	if end > len(r) {
		end = len(r)
	}
	return r[1:end]
}
