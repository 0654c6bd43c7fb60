package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"cupid/internal/config"
	"cupid/internal/models/request_models"
	"cupid/internal/models/response_models"
	"cupid/pkg/utils"
)

const RoleAdmin = "admin"

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AdminLoginResponse, error)
}

// AuthService signs in the single configured administrator.
type AuthService struct {
	email        string
	passwordHash string
	secret       []byte
	log          *zap.Logger
}

func NewAuthService(cfg *config.Config, log *zap.Logger) AuthServiceInterface {
	return &AuthService{
		email:        strings.TrimSpace(cfg.Auth.AdminEmail),
		passwordHash: cfg.Auth.AdminPasswordHash,
		secret:       []byte(cfg.Auth.JWTSecret),
		log:          log,
	}
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AdminLoginResponse, error) {
	if a.email == "" || !strings.EqualFold(a.email, strings.TrimSpace(request.Email)) {
		return nil, utils.ErrInvalidCredentials
	}
	if !utils.CheckPassword(a.passwordHash, request.Password) {
		a.log.Warn("admin login rejected", zap.String("email", request.Email))
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(a.secret, a.email, RoleAdmin)
	if err != nil {
		a.log.Error("failed to sign admin token", zap.Error(err))
		return nil, err
	}

	return &response_models.AdminLoginResponse{
		Token:     token,
		ExpiresIn: int64(utils.TokenTTL.Seconds()),
	}, nil
}
