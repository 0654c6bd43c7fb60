package auth_fx

import (
	"go.uber.org/fx"

	"cupid/internal/services"
)

var Module = fx.Provide(
	services.NewAuthService)
