package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResultSnapshot is the consented copy of a result handed to other systems.
type ResultSnapshot struct {
	BaseModel
	ResultID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	UserID             string         `gorm:"size:128;not null;index"`
	Consent            bool           `gorm:"not null"`
	PrimaryArchetypeID string         `gorm:"size:64"`
	Payload            datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (ResultSnapshot) TableName() string { return "quiz_result_snapshots" }
