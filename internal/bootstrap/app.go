package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/assets"
	googleauth "resumebuilder-backend/internal/auth"
	"resumebuilder-backend/internal/export"
	"resumebuilder-backend/internal/preview"
	"resumebuilder-backend/internal/resumes"
	"resumebuilder-backend/internal/shared/config"
	"resumebuilder-backend/internal/shared/server"
	"resumebuilder-backend/internal/shared/storage/db"
	"resumebuilder-backend/internal/shared/storage/object"
	localstore "resumebuilder-backend/internal/shared/storage/object/local"
	s3store "resumebuilder-backend/internal/shared/storage/object/s3"
	"resumebuilder-backend/internal/users"
	"resumebuilder-backend/internal/wizard"
)

// App holds the shared dependencies behind the HTTP surface.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	AssetsService  *assets.Service
	ResumesRepo    resumes.Repo
	ResumesService *resumes.Service
	UsersRepo      users.Repo
	UsersService   *users.Service
	Sessions       *wizard.SessionManager
	Rasterizer     export.Rasterizer

	ResumesHandler *resumes.Handler
	WizardHandler  *wizard.Handler
	PreviewHandler *preview.Handler
	AssetsHandler  *assets.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares all dependencies and the router. With no database
// configured in a dev-like environment the in-memory repositories are
// used, so the server still comes up for local work.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumesHandler: app.ResumesHandler,
		WizardHandler:  app.WizardHandler,
		PreviewHandler: app.PreviewHandler,
		AssetsHandler:  app.AssetsHandler,
		UsersHandler:   app.UsersHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.AssetsService = assets.NewService(app.Store, app.Config.AssetBaseURL)
	app.ResumesService = resumes.NewService(app.ResumesRepo, app.AssetsService)
	app.UsersService = users.NewService(app.UsersRepo, app.AssetsService)
	app.Sessions = wizard.NewSessionManager()
	app.ResumesService.OnDelete = app.Sessions.Drop
	app.Rasterizer = export.NewChromeRasterizer(app.Config.ChromePath)

	app.AssetsHandler = assets.NewHandler(app.AssetsService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.WizardHandler = wizard.NewHandler(app.ResumesService, app.Sessions)
	app.PreviewHandler = preview.NewHandler(app.ResumesService, app.Rasterizer)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.Config.AdminEmails,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
