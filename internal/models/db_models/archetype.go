package db_models

import (
	"github.com/pgvector/pgvector-go"
)

// Archetype is a document of the personality_archetypes collection. Target
// holds the archetype's position with one dimension per scoring axis, in the
// configured axis order.
type Archetype struct {
	ID          string          `gorm:"primaryKey;size:64"`
	Title       string          `gorm:"not null"`
	Description string          `gorm:"type:text"`
	ImageURL    string
	Target      pgvector.Vector `gorm:"type:vector;not null"`
	CatalogModel
}

func (Archetype) TableName() string { return "personality_archetypes" }
