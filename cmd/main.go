package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ExamPortal/config"
	"github.com/lshigami/ExamPortal/database"
	_ "github.com/lshigami/ExamPortal/docs" // Swagger docs
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/controller/faculty"
	"github.com/lshigami/ExamPortal/internal/controller/student"
	"github.com/lshigami/ExamPortal/internal/logger"
	"github.com/lshigami/ExamPortal/internal/repository"
	"github.com/lshigami/ExamPortal/internal/server"
	"github.com/lshigami/ExamPortal/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Exam Portal API
// @version 1.0
// @description Exam authoring, attempt tracking and automatic grading for the school exam portal.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init("info", false)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewTokenVerifier,
			server.NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
			repository.NewAttemptRepository,
			repository.NewResultRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreConverterService,
			service.NewAnswerKeyService,
			service.NewAttemptService,
			service.NewExamService,
			service.NewStudentExamService,
			service.NewGradingService,
			service.NewFeedbackGenerator,
			service.NewReviewService,
		),

		// API Controllers Layer
		fx.Provide(
			faculty.NewExamController,
			student.NewAttemptController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(CloseFeedbackOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func NewTokenVerifier(cfg *config.Config) *auth.TokenVerifier {
	return auth.NewTokenVerifier(cfg.Auth.JWTSecret)
}

// ConfigureLogger re-initialises the global logger once the config is known.
func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// CloseFeedbackOnStop releases the Gemini client when the application stops.
func CloseFeedbackOnStop(lc fx.Lifecycle, feedback service.FeedbackGenerator) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return feedback.Close()
		},
	})
}

// RegisterRoutesAndStartServer mounts the API and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	verifier *auth.TokenVerifier,
	examCtrl *faculty.ExamController,
	attemptCtrl *student.AttemptController,
	db *gorm.DB,
) {
	server.RegisterRoutes(router, verifier, examCtrl, attemptCtrl)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam Portal API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
