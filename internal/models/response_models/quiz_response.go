package response_models

import (
	"time"
)

type QuestionResponse struct {
	ID        int                `json:"id"`
	Text      string             `json:"text"`
	Category  string             `json:"category"`
	Weights   map[string]float64 `json:"weights"`
	Direction int                `json:"dir"`
	Order     int                `json:"order"`
}

type QuestionCatalogResponse struct {
	Questions    []QuestionResponse `json:"questions"`
	Axes         []string           `json:"axes"`
	ScaleMax     int                `json:"scale_max"`
	BatchSize    int                `json:"batch_size"`
	TotalBatches int                `json:"total_batches"`
}

// QuestionBatchResponse is one page of the questionnaire.
type QuestionBatchResponse struct {
	Page         int                `json:"page"`
	TotalBatches int                `json:"total_batches"`
	Questions    []QuestionResponse `json:"questions"`
	ScaleMax     int                `json:"scale_max"`
}

type ArchetypeResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url"`
	Target      map[string]float64 `json:"axes_target"`
	Order       int                `json:"order"`
}

type ArchetypeRanking struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Match       float64 `json:"match"`
	Distance    float64 `json:"distance"`
}

type ArchetypeMatch struct {
	ID         string  `json:"id"`
	Percentage float64 `json:"percentage"`
	Distance   float64 `json:"distance"`
}

type StoredAnswer struct {
	QuestionID int                `json:"question_id"`
	Answer     int                `json:"answer"`
	Weights    map[string]float64 `json:"weights"`
	Direction  int                `json:"dir"`
}

type QuizResultResponse struct {
	ResultID       string             `json:"result_id,omitempty"`
	Persisted      bool               `json:"persisted"`
	State          string             `json:"state"`
	Scores         map[string]float64 `json:"scores"`
	Primary        *ArchetypeRanking  `json:"primary,omitempty"`
	Similar        []ArchetypeRanking `json:"similar"`
	Rankings       []ArchetypeRanking `json:"rankings"`
	Matches        []ArchetypeMatch   `json:"archetypes"`
	TotalQuestions int                `json:"total_questions"`
	CompletedAt    time.Time          `json:"completed_at"`
	Feedback       *int               `json:"feedback,omitempty"`
	ShareMessage   string             `json:"share_message,omitempty"`
}

type FeedbackResponse struct {
	ResultID string `json:"result_id"`
	Feedback int    `json:"feedback"`
	State    string `json:"state"`
}

type QuizResultSummary struct {
	ResultID           string             `json:"result_id"`
	UserID             string             `json:"user_id"`
	UserName           string             `json:"user_name"`
	PrimaryArchetypeID string             `json:"primary_archetype_id"`
	Scores             map[string]float64 `json:"scores"`
	Feedback           *int               `json:"feedback,omitempty"`
	CompletedAt        time.Time          `json:"completed_at"`
}

type InsightResponse struct {
	ResultID string `json:"result_id"`
	Insight  string `json:"insight"`
}

type SeedResponse struct {
	Questions  int `json:"questions"`
	Archetypes int `json:"archetypes"`
}
