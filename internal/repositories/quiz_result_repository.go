package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cupid/internal/models/db_models"
)

type QuizResultRepositoryInterface interface {
	CreateResult(ctx context.Context, result *db_models.QuizResult) error
	GetResultByID(ctx context.Context, id uuid.UUID) (*db_models.QuizResult, error)
	ListResults(ctx context.Context, page, pageSize int) ([]db_models.QuizResult, int64, error)
}

type QuizResultRepository struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) QuizResultRepositoryInterface {
	return &QuizResultRepository{db: db}
}

func (r *QuizResultRepository) CreateResult(ctx context.Context, result *db_models.QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *QuizResultRepository) GetResultByID(ctx context.Context, id uuid.UUID) (*db_models.QuizResult, error) {
	var result db_models.QuizResult
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// ListResults returns a page of results, newest first, plus the total count.
func (r *QuizResultRepository) ListResults(ctx context.Context, page, pageSize int) ([]db_models.QuizResult, int64, error) {
	var (
		results []db_models.QuizResult
		total   int64
	)
	db := r.db.WithContext(ctx).Model(&db_models.QuizResult{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("completed_at DESC").
		Order("id ASC").
		Find(&results).Error
	return results, total, err
}
