package controllers_fx

import (
	"go.uber.org/fx"

	"cupid/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewAuthController))
