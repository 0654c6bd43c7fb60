package quiz_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cupid/internal/repositories"
	"cupid/internal/services"
)

var Module = fx.Provide(
	provideQuizResultRepo,
	provideSnapshotRepo,
	services.NewSnapshotService,
	services.NewQuizService,
)

func provideQuizResultRepo(db *gorm.DB) repositories.QuizResultRepositoryInterface {
	return repositories.NewQuizResultRepository(db)
}

func provideSnapshotRepo(db *gorm.DB) repositories.SnapshotRepositoryInterface {
	return repositories.NewSnapshotRepository(db)
}
