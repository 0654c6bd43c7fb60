package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// QuizResult is written once per completed quiz. Matches holds the full,
// unfiltered match list; display rankings are projected from it on read.
type QuizResult struct {
	BaseModel
	UserID             string         `gorm:"size:128;not null;index"`
	UserName           string         `gorm:"size:128"`
	Answers            datatypes.JSON `gorm:"type:jsonb;not null"`
	Scores             datatypes.JSON `gorm:"type:jsonb;not null"`
	Matches            datatypes.JSON `gorm:"type:jsonb;not null"`
	Ranking            IDList         // archetype ids in rank order
	PrimaryArchetypeID string         `gorm:"size:64;index"`
	TotalQuestions     int            `gorm:"not null"`
	ScaleMax           int            `gorm:"not null"`
	CompletedAt        time.Time      `gorm:"not null"`
	Feedback           *int           `gorm:"check:feedback IS NULL OR (feedback >= 1 AND feedback <= 5)"` // accuracy rating 1..5
}

func (QuizResult) TableName() string { return "personality_quiz_results" }
