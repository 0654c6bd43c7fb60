package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"

	"cupid/internal/models/db_models"
	"cupid/internal/models/response_models"
	"cupid/internal/scoring"
)

func questionFromDB(q db_models.Question) (scoring.Question, error) {
	var weights scoring.Weights
	if len(q.Weights) > 0 {
		if err := json.Unmarshal(q.Weights, &weights); err != nil {
			return scoring.Question{}, fmt.Errorf("question %d weights: %w", q.ID, err)
		}
	}
	return scoring.Question{
		ID:        q.ID,
		Text:      q.Text,
		Category:  q.Category,
		Weights:   weights,
		Direction: scoring.Direction(q.Direction),
		Order:     q.DisplayOrder,
	}, nil
}

func archetypeFromDB(model scoring.Model, a db_models.Archetype) (scoring.Archetype, error) {
	raw := a.Target.Slice()
	vec := make([]float64, len(raw))
	for i, f := range raw {
		v, err := float32Decimal(f)
		if err != nil {
			return scoring.Archetype{}, fmt.Errorf("archetype %q: %w", a.ID, err)
		}
		vec[i] = v
	}
	target, err := scoring.ScoresFromVector(model, vec)
	if err != nil {
		return scoring.Archetype{}, fmt.Errorf("archetype %q: %w", a.ID, err)
	}
	return scoring.Archetype{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Target:      target,
		Order:       a.DisplayOrder,
	}, nil
}

func questionToDB(q scoring.Question) (db_models.Question, error) {
	weights, err := json.Marshal(q.Weights)
	if err != nil {
		return db_models.Question{}, err
	}
	return db_models.Question{
		ID:           q.ID,
		Text:         q.Text,
		Category:     q.Category,
		Weights:      datatypes.JSON(weights),
		Direction:    int(q.Direction),
		CatalogModel: db_models.CatalogModel{DisplayOrder: q.Order},
	}, nil
}

// float32Decimal widens f through its shortest decimal form, so 3.1 stays 3.1.
func float32Decimal(f float32) (float64, error) {
	return strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
}

// checkTargetPrecision rejects targets that would not read back unchanged
// from the float32 vector column.
func checkTargetPrecision(model scoring.Model, a scoring.Archetype) error {
	for i, v := range a.Target.Vector(model) {
		back, err := float32Decimal(float32(v))
		if err != nil || back != v {
			return fmt.Errorf("archetype %q: target %s=%v exceeds float32 precision", a.ID, model.Axes[i], v)
		}
	}
	return nil
}

func archetypeToDB(model scoring.Model, a scoring.Archetype) db_models.Archetype {
	vec := a.Target.Vector(model)
	target := make([]float32, len(vec))
	for i, v := range vec {
		target[i] = float32(v)
	}
	return db_models.Archetype{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		ImageURL:     a.ImageURL,
		Target:       pgvector.NewVector(target),
		CatalogModel: db_models.CatalogModel{DisplayOrder: a.Order},
	}
}

func axisMap[K ~string](m map[K]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func toQuestionResponse(q scoring.Question) response_models.QuestionResponse {
	return response_models.QuestionResponse{
		ID:        q.ID,
		Text:      q.Text,
		Category:  q.Category,
		Weights:   axisMap(q.Weights),
		Direction: int(q.Direction),
		Order:     q.Order,
	}
}

func toArchetypeResponse(a scoring.Archetype) response_models.ArchetypeResponse {
	return response_models.ArchetypeResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Target:      axisMap(a.Target),
		Order:       a.Order,
	}
}

func toArchetypeRanking(r scoring.RankedArchetype) response_models.ArchetypeRanking {
	return response_models.ArchetypeRanking{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Match:       r.Percentage,
		Distance:    r.Distance,
	}
}
