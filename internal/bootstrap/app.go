package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"interviewai-backend/internal/builtresumes"
	"interviewai-backend/internal/feedback"
	"interviewai-backend/internal/interviews"
	"interviewai-backend/internal/llm"
	"interviewai-backend/internal/llm/gemini"
	"interviewai-backend/internal/resumes"
	"interviewai-backend/internal/services/health"
	"interviewai-backend/internal/shared/config"
	"interviewai-backend/internal/shared/server"
	"interviewai-backend/internal/shared/storage/db"
	localstore "interviewai-backend/internal/shared/storage/object/local"
	"interviewai-backend/internal/shared/telemetry"
	"interviewai-backend/internal/supabase"
)

const supabaseTimeout = 30 * time.Second

// App holds shared dependencies and the HTTP router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Logger *zap.Logger

	Model      llm.Client
	Assistant  *llm.Assistant
	Files      resumes.FileStore
	LocalFiles *supabase.LocalStore

	InterviewsRepo   interviews.Repo
	FeedbackRepo     feedback.Repo
	ResumesRepo      resumes.Repo
	BuiltResumesRepo builtresumes.Repo

	InterviewsService   *interviews.Service
	FeedbackService     *feedback.Service
	ResumesService      *resumes.Service
	BuiltResumesService *builtresumes.Service

	InterviewHandler *interviews.Handler
	FeedbackHandler  *feedback.Handler
	ResumeHandler    *resumes.Handler
	BuilderHandler   *builtresumes.Handler
	Health           *health.Service
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	logger := telemetry.L()

	if strings.TrimSpace(cfg.SupabaseJWTSecret) == "" {
		if !config.IsDevLike(cfg.Env) {
			return nil, errors.New("SUPABASE_JWT_SECRET is required")
		}
		logger.Warn("bootstrap: SUPABASE_JWT_SECRET empty; every authenticated route will answer 401")
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	model, err := buildModel(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	files, localFiles, err := buildFiles(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:     cfg,
		DB:         sqlDB,
		Logger:     logger,
		Model:      model,
		Files:      files,
		LocalFiles: localFiles,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		InterviewHandler: app.InterviewHandler,
		FeedbackHandler:  app.FeedbackHandler,
		ResumeHandler:    app.ResumeHandler,
		BuilderHandler:   app.BuilderHandler,
		Health:           app.Health,
	})

	return app, nil
}

// Close waits for background work and releases the database pool.
func (a *App) Close() error {
	if a.ResumesService != nil {
		a.ResumesService.Wait()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if config.IsDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions().Merge(db.OptionsFromConfig(cfg)))
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Error("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildModel(ctx context.Context, cfg config.Config, logger *zap.Logger) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if config.IsDevLike(cfg.Env) {
			logger.Warn("bootstrap: GEMINI_API_KEY empty; model calls will use fallbacks")
			return nil, nil
		}
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	client, err := gemini.New(ctx, gemini.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeminiTimeout,
		Logger:  logger.Named("gemini"),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func buildFiles(cfg config.Config) (resumes.FileStore, *supabase.LocalStore, error) {
	if strings.TrimSpace(cfg.SupabaseURL) != "" {
		client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, supabaseTimeout)
		if err != nil {
			return nil, nil, err
		}
		return client, nil, nil
	}
	if !config.IsDevLike(cfg.Env) {
		return nil, nil, errors.New("SUPABASE_URL is required")
	}
	telemetry.Info("bootstrap.local_files", map[string]any{"dir": cfg.LocalStoreDir})
	local := supabase.NewLocalStore(localstore.New(cfg.LocalStoreDir))
	return local, local, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.InterviewsRepo = &interviews.PGRepo{DB: app.DB}
		app.FeedbackRepo = &feedback.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.BuiltResumesRepo = &builtresumes.PGRepo{DB: app.DB}
	} else {
		app.InterviewsRepo = interviews.NewMemoryRepo()
		app.FeedbackRepo = feedback.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.BuiltResumesRepo = builtresumes.NewMemoryRepo()
	}

	app.Assistant = llm.NewAssistant(app.Model, app.Logger.Named("llm"))

	app.InterviewsService = &interviews.Service{
		Repo:      app.InterviewsRepo,
		Generator: app.Assistant,
	}
	app.FeedbackService = &feedback.Service{
		Repo:       app.FeedbackRepo,
		Interviews: app.InterviewsRepo,
		Analyzer:   app.Assistant,
	}
	app.ResumesService = &resumes.Service{
		Repo:     app.ResumesRepo,
		Files:    app.Files,
		Analyzer: app.Assistant,
		Logger:   app.Logger.Named("resumes"),
	}
	app.BuiltResumesService = &builtresumes.Service{
		Repo:    app.BuiltResumesRepo,
		Builder: app.Assistant,
	}

	app.InterviewHandler = interviews.NewHandler(app.InterviewsService)
	app.FeedbackHandler = feedback.NewHandler(app.FeedbackService)
	app.ResumeHandler = resumes.NewHandler(app.ResumesService, app.LocalFiles)
	app.BuilderHandler = builtresumes.NewHandler(app.BuiltResumesService)

	if app.DB != nil {
		app.Health = health.NewService(app.DB)
	} else {
		app.Health = health.NewService(nil)
	}
}
