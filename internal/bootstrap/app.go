package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/auth"
	"resume-builder/internal/generation"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	objectlocal "resume-builder/internal/shared/storage/object/local"
	objects3 "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/uploads"
	"resume-builder/internal/users"
)

// App holds the assembled application.
type App struct {
	Router *gin.Engine
	DB     *sql.DB
}

// Build wires repositories, services, and handlers from configuration.
// Without DATABASE_URL it falls back to in-memory repositories so local
// development works with zero infrastructure.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	var (
		database   *sql.DB
		resumeRepo resumes.Repo
		userRepo   users.Repo
	)

	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		log.Printf("bootstrap: DATABASE_URL not set, using in-memory repositories")
		resumeRepo = resumes.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	} else {
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := db.RunMigrations(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		database = conn
		resumeRepo = &resumes.PGRepo{DB: conn}
		userRepo = &users.PGRepo{DB: conn}
	}

	store, err := buildObjectStore(ctx, cfg)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, err
	}

	resumeSvc := &resumes.Service{Repo: resumeRepo, Images: store}
	userSvc := users.NewService(userRepo)
	genSvc := generation.NewService(buildLLMClient(cfg))

	googleAuth := auth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		userSvc,
	)

	router := server.NewRouter(server.RouterDeps{
		Config:     cfg,
		Resumes:    resumes.NewHandler(resumeSvc),
		Generation: generation.NewHandler(genSvc),
		Uploads:    uploads.NewHandler(resumeSvc, store, cfg.PublicBaseURL),
		Users:      users.NewHandler(userSvc),
		GoogleAuth: googleAuth,
		Store:      store,
	})

	return &App{Router: router, DB: database}, nil
}

// Close releases resources held by the app.
func (a *App) Close() {
	if a != nil && a.DB != nil {
		a.DB.Close()
	}
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := objects3.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	default:
		return objectlocal.New(cfg.LocalStoreDir), nil
	}
}

// buildLLMClient returns the configured provider client, or a placeholder
// that always fails so generation serves its deterministic fallback.
func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider != "gemini" {
		return llm.PlaceholderClient{}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Printf("bootstrap: GEMINI_API_KEY not set, generation will serve fallback content")
		return llm.PlaceholderClient{}
	}

	client, err := gemini.NewClient(apiKey, cfg.LLMModel)
	if err != nil {
		log.Printf("bootstrap: gemini client init failed: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}
