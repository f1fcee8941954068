package app

import (
	"context"
	"strings"

	"forum/internal/app/health"
	"forum/internal/app/post"
	"forum/internal/app/thread"
	"forum/internal/config"
	"forum/internal/db"
	"forum/internal/db/seeder"
	"forum/internal/router"
	"forum/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	gin.SetMode(ginMode(cfg.GinMode))

	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}

	clock := utils.Clock(nil)

	threadRepo := thread.NewRepository(dbConn)
	postRepo := post.NewRepository(dbConn)

	threadService := thread.NewService(threadRepo, postRepo, clock, logger)
	postService := post.NewService(postRepo, threadRepo, clock, logger)

	if cfg.SeedWelcome {
		seed := seeder.NewSeeder(threadService, logger)
		if err := seed.Seed(context.Background()); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	healthHandler := health.NewHandler(health.NewService(&utils.HealthChecker{DB: dbConn}))
	threadHandler := thread.NewHandler(threadService)
	postHandler := post.NewHandler(postService)

	r := router.NewRouter(logger, cfg.AllowedOrigins())

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterThreadRoutes(threadHandler)
	r.RegisterPostRoutes(postHandler)
	r.RegisterPageRoutes(cfg.TemplatesDir, cfg.StaticDir)
	r.RegisterSwaggerRoutes()
	r.RegisterMetricsRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}

// Close releases the store handle.
func (a *Application) Close() error {
	return db.Close(a.DB)
}

func ginMode(mode string) string {
	switch strings.ToLower(mode) {
	case gin.DebugMode:
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
