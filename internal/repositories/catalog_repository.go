package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cupid/internal/models/db_models"
)

type CatalogRepositoryInterface interface {
	ListQuestions(ctx context.Context) ([]db_models.Question, error)
	ListArchetypes(ctx context.Context) ([]db_models.Archetype, error)
	UpsertCatalog(ctx context.Context, questions []db_models.Question, archetypes []db_models.Archetype) error
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListQuestions(ctx context.Context) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *CatalogRepository) ListArchetypes(ctx context.Context) ([]db_models.Archetype, error) {
	var archetypes []db_models.Archetype
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("id ASC").
		Find(&archetypes).Error
	return archetypes, err
}

// UpsertCatalog writes questions and archetypes in a single transaction,
// overwriting rows that share a primary key.
func (r *CatalogRepository) UpsertCatalog(ctx context.Context, questions []db_models.Question, archetypes []db_models.Archetype) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(questions) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"text", "category", "weights", "direction", "display_order", "updated_at"}),
			}).Create(&questions).Error
			if err != nil {
				return err
			}
		}
		if len(archetypes) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "description", "image_url", "target", "display_order", "updated_at"}),
			}).Create(&archetypes).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
