package db_models

import (
	"gorm.io/datatypes"
)

// Question is a document of the personality_questions collection.
type Question struct {
	ID        int            `gorm:"primaryKey;autoIncrement:false"`
	Text      string         `gorm:"type:text;not null"`
	Category  string         `gorm:"size:64"`
	Weights   datatypes.JSON `gorm:"type:jsonb;not null"` // {"HP":0.4,"CI":0.6}
	Direction int            `gorm:"not null;default:1;check:direction IN (-1, 1)"`
	CatalogModel
}

func (Question) TableName() string { return "personality_questions" }
