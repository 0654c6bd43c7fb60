package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cupid/cmd/fx/auth_fx"
	"cupid/cmd/fx/catalog_fx"
	"cupid/cmd/fx/config_fx"
	"cupid/cmd/fx/controllers_fx"
	"cupid/cmd/fx/db_fx"
	"cupid/cmd/fx/feedback_fx"
	"cupid/cmd/fx/logger_fx"
	"cupid/cmd/fx/memcache_fx"
	"cupid/cmd/fx/narrator_fx"
	"cupid/cmd/fx/quiz_fx"
	"cupid/internal/api/controllers"
	"cupid/internal/config"
	"cupid/internal/infra"
	"cupid/internal/services"
	"cupid/pkg/middleware"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cupid",
		Short:         "Personality quiz scoring service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				config_fx.Module,
				logger_fx.Module,
				db_fx.Module,
				memcache_fx.Module,
				catalog_fx.Module,
				quiz_fx.Module,
				feedback_fx.Module,
				narrator_fx.Module,
				auth_fx.Module,
				controllers_fx.Module,

				fx.Provide(ProvideRouter),
				fx.Invoke(StartServer),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, db dbHandle) error {
				if err := infra.Migrate(db.gorm); err != nil {
					return err
				}
				db.log.Info("migration complete")
				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the built-in question and archetype catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, db dbHandle) error {
				resp, err := db.catalog.Seed(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d questions and %d archetypes\n", resp.Questions, resp.Archetypes)
				return nil
			})
		},
	}
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	catalogController *controllers.CatalogController,
	quizController *controllers.QuizController,
	feedbackController *controllers.FeedbackController,
	authController *controllers.AuthController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, []byte(cfg.Auth.JWTSecret), catalogController, quizController, feedbackController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtSecret []byte,
	catalogController *controllers.CatalogController,
	quizController *controllers.QuizController,
	feedbackController *controllers.FeedbackController,
	authController *controllers.AuthController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/questions", catalogController.GetQuestions)
	quizGroup.GET("/archetypes", catalogController.GetArchetypes)
	quizGroup.POST("/submit", quizController.SubmitQuiz)
	quizGroup.GET("/results/:id", quizController.GetResult)
	quizGroup.PUT("/results/:id/feedback", feedbackController.RecordFeedback)
	quizGroup.POST("/results/:id/insight", quizController.CreateInsight)

	r.POST("/admin/login", authController.Login)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.RoleMiddleware(services.RoleAdmin))
	adminGroup.POST("/catalog/seed", catalogController.SeedCatalog)
	adminGroup.GET("/results", quizController.ListResults)
	adminGroup.GET("/feedback", feedbackController.ListFeedback)
}
