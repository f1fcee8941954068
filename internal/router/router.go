package router

import (
	"forum/internal/app/health"
	"forum/internal/app/page"
	"forum/internal/app/post"
	"forum/internal/app/thread"
	"forum/internal/middleware"

	_ "forum/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const APIPrefix = "/api/forum"

type Router struct {
	Engine *gin.Engine
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger, allowedOrigins []string) *Router {
	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.CORSMiddleware(allowedOrigins))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(gin.Recovery())
	return &Router{Engine: engine, logger: logger}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine, r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterThreadRoutes(handler thread.Handler) {
	thread.RegisterRoutes(r.Engine.Group(APIPrefix), handler)
}

func (r *Router) RegisterPostRoutes(handler post.Handler) {
	post.RegisterRoutes(r.Engine.Group(APIPrefix), handler)
}

func (r *Router) RegisterPageRoutes(templatesDir, staticDir string) {
	page.RegisterRoutes(r.Engine, templatesDir, staticDir, r.logger)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (r *Router) RegisterMetricsRoutes() {
	r.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) Serve(addr string) error {
	return r.Engine.Run(addr)
}
