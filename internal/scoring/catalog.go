package scoring

import (
	"fmt"
	"math"
	"strings"
)

type Question struct {
	ID        int
	Text      string
	Category  string
	Weights   Weights
	Direction Direction
	Order     int
}

type Archetype struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Target      AxisScores
	Order       int
}

// Catalog is an immutable, validated snapshot of the question and archetype
// lists for one quiz session. Input order is kept as given; callers load it
// already sorted by the catalog's order field.
type Catalog struct {
	model      Model
	questions  []Question
	archetypes []Archetype
	byID       map[int]int
}

func NewCatalog(model Model, questions []Question, archetypes []Archetype) (*Catalog, error) {
	c := &Catalog{
		model:      model,
		questions:  make([]Question, 0, len(questions)),
		archetypes: make([]Archetype, 0, len(archetypes)),
		byID:       make(map[int]int, len(questions)),
	}

	for _, q := range questions {
		if err := model.validateQuestion(q); err != nil {
			return nil, err
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidQuestion, q.ID)
		}
		q.Weights = q.Weights.Clone()
		c.byID[q.ID] = len(c.questions)
		c.questions = append(c.questions, q)
	}

	seen := make(map[string]struct{}, len(archetypes))
	for _, a := range archetypes {
		if err := model.validateArchetype(a); err != nil {
			return nil, err
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidArchetype, a.ID)
		}
		seen[a.ID] = struct{}{}
		target := make(AxisScores, len(a.Target))
		for k, v := range a.Target {
			target[k] = v
		}
		a.Target = target
		c.archetypes = append(c.archetypes, a)
	}

	return c, nil
}

func (m Model) validateQuestion(q Question) error {
	if q.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidQuestion, q.ID)
	}
	if !q.Direction.Valid() {
		return fmt.Errorf("%w: question %d has direction %d", ErrInvalidQuestion, q.ID, q.Direction)
	}
	for axis, w := range q.Weights {
		if !m.HasAxis(axis) {
			return fmt.Errorf("%w: question %d weights unknown axis %q", ErrInvalidQuestion, q.ID, axis)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: question %d has weight %v on %s", ErrInvalidQuestion, q.ID, w, axis)
		}
	}
	return nil
}

func (m Model) validateArchetype(a Archetype) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("%w: blank id", ErrInvalidArchetype)
	}
	if len(a.Target) != len(m.Axes) {
		return fmt.Errorf("%w: %q targets %d axes, model has %d", ErrInvalidArchetype, a.ID, len(a.Target), len(m.Axes))
	}
	for _, axis := range m.Axes {
		v, ok := a.Target[axis]
		if !ok {
			return fmt.Errorf("%w: %q has no target for axis %s", ErrInvalidArchetype, a.ID, axis)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %q has non-finite target on %s", ErrInvalidArchetype, a.ID, axis)
		}
	}
	return nil
}

func (c *Catalog) Model() Model { return c.model }

func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

func (c *Catalog) Archetypes() []Archetype {
	out := make([]Archetype, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}

func (c *Catalog) Question(id int) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

func (c *Catalog) ArchetypeIndex() map[string]Archetype {
	return IndexArchetypes(c.archetypes)
}

// NewAnswer records value against question id. The question's weights and
// direction are copied into the answer, so later catalog edits never change
// an answer already given.
func (c *Catalog) NewAnswer(questionID, value int) (Answer, error) {
	q, ok := c.Question(questionID)
	if !ok {
		return Answer{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	if value < 0 || value > c.model.ScaleMax {
		return Answer{}, fmt.Errorf("%w: question %d got %d, want 0..%d", ErrValueOutOfRange, questionID, value, c.model.ScaleMax)
	}
	return Answer{
		QuestionID: q.ID,
		RawValue:   value,
		Weights:    q.Weights.Clone(),
		Direction:  q.Direction,
	}, nil
}

func IndexArchetypes(list []Archetype) map[string]Archetype {
	out := make(map[string]Archetype, len(list))
	for _, a := range list {
		out[a.ID] = a
	}
	return out
}
