// Package seed carries the default question and archetype catalog.
package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"cupid/internal/scoring"
)

//go:embed data/*.yaml
var files embed.FS

type Question struct {
	ID        int                `yaml:"id"`
	Text      string             `yaml:"text"`
	Category  string             `yaml:"category"`
	Weights   map[string]float64 `yaml:"weights"`
	Direction int                `yaml:"dir"`
	Order     int                `yaml:"order"`
}

type Archetype struct {
	ID          string             `yaml:"id"`
	Title       string             `yaml:"title"`
	Target      map[string]float64 `yaml:"axes_target"`
	Description string             `yaml:"description"`
	ImageURL    string             `yaml:"image_url"`
	Order       int                `yaml:"order"`
}

type Catalog struct {
	Questions  []Question  `yaml:"questions"`
	Archetypes []Archetype `yaml:"archetypes"`
}

// Load parses the embedded catalog and validates it against model.
func Load(model scoring.Model) (*Catalog, error) {
	var c Catalog
	for _, name := range []string{"data/questions.yaml", "data/archetypes.yaml"} {
		raw, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	if _, err := scoring.NewCatalog(model, c.ScoringQuestions(), c.ScoringArchetypes()); err != nil {
		return nil, fmt.Errorf("seed catalog does not fit the scoring model: %w", err)
	}
	return &c, nil
}

func (c *Catalog) ScoringQuestions() []scoring.Question {
	out := make([]scoring.Question, 0, len(c.Questions))
	for _, q := range c.Questions {
		w := make(scoring.Weights, len(q.Weights))
		for k, v := range q.Weights {
			w[scoring.AxisKey(k)] = v
		}
		out = append(out, scoring.Question{
			ID:        q.ID,
			Text:      q.Text,
			Category:  q.Category,
			Weights:   w,
			Direction: scoring.Direction(q.Direction),
			Order:     q.Order,
		})
	}
	return out
}

func (c *Catalog) ScoringArchetypes() []scoring.Archetype {
	out := make([]scoring.Archetype, 0, len(c.Archetypes))
	for _, a := range c.Archetypes {
		t := make(scoring.AxisScores, len(a.Target))
		for k, v := range a.Target {
			t[scoring.AxisKey(k)] = v
		}
		out = append(out, scoring.Archetype{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			ImageURL:    a.ImageURL,
			Target:      t,
			Order:       a.Order,
		})
	}
	return out
}
