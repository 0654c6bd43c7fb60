package main

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cupid/cmd/fx/logger_fx"
	"cupid/internal/config"
	"cupid/internal/infra"
	"cupid/internal/repositories"
	"cupid/internal/scoring"
	"cupid/internal/services"
	mem "cupid/pkg/memcache"
)

type dbHandle struct {
	gorm    *gorm.DB
	log     *zap.Logger
	catalog services.CatalogServiceInterface
}

// withDatabase opens the database for one-shot commands and closes it when fn
// returns.
func withDatabase(ctx context.Context, fn func(ctx context.Context, db dbHandle) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger_fx.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := infra.InitPostgresql(cfg.PostgresURL, log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, log)

	catalog, err := services.NewCatalogService(
		repositories.NewCatalogRepository(db),
		mem.NewTTLStore[*scoring.Catalog](),
		cfg,
		log,
	)
	if err != nil {
		return err
	}

	return fn(ctx, dbHandle{gorm: db, log: log, catalog: catalog})
}
