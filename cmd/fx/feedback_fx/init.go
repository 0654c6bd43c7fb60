package feedback_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cupid/internal/repositories"
	"cupid/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, log *zap.Logger) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, log)
}
