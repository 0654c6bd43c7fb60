package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cupid/internal/models/db_models"
)

type SnapshotRepositoryInterface interface {
	UpsertSnapshot(ctx context.Context, snapshot *db_models.ResultSnapshot) error
	GetSnapshotByResultID(ctx context.Context, resultID uuid.UUID) (*db_models.ResultSnapshot, error)
}

type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot keeps one snapshot per result id.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *db_models.ResultSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "result_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "consent", "primary_archetype_id", "payload", "updated_at"}),
	}).Create(snapshot).Error
}

func (r *SnapshotRepository) GetSnapshotByResultID(ctx context.Context, resultID uuid.UUID) (*db_models.ResultSnapshot, error) {
	var snapshot db_models.ResultSnapshot
	err := r.db.WithContext(ctx).First(&snapshot, "result_id = ?", resultID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}
