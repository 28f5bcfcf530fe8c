package routes

import (
	"log"

	"wantok-jobs/internal/config"
	"wantok-jobs/internal/database"
	"wantok-jobs/internal/delivery/http/handler"
	v1 "wantok-jobs/internal/delivery/http/routes/v1"
	"wantok-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  usecase.RecommendationCache
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.RecommendationCache, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: cache, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
