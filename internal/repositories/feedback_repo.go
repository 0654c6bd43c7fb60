package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cupid/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	UpdateFeedback(ctx context.Context, resultID uuid.UUID, feedback int) (bool, error)
	ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.QuizResult, error)
}
type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{db: db}
}

// UpdateFeedback overwrites only the feedback column of a stored result. The
// bool reports whether a result with that id exists.
func (r *FeedbackRepository) UpdateFeedback(ctx context.Context, resultID uuid.UUID, feedback int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.QuizResult{}).
		Where("id = ?", resultID).
		UpdateColumn("feedback", feedback)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, page, pageSize int) ([]db_models.QuizResult, error) {
	var results []db_models.QuizResult
	err := r.db.WithContext(ctx).
		Where("feedback IS NOT NULL").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}
