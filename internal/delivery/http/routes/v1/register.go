package v1

import (
	"log"

	"wantok-jobs/internal/config"
	"wantok-jobs/internal/database"
	"wantok-jobs/internal/delivery/http/handler"
	"wantok-jobs/internal/delivery/http/middleware"
	"wantok-jobs/internal/pkg/jwt"
	"wantok-jobs/internal/repository"
	"wantok-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RecommendationCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret)
	authMw := middleware.NewOptionalAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)

	recommendUC := usecase.NewRecommendationUsecase(jobRepo, categoryRepo, profileRepo, cache, cfg.Recommend, logger)
	similarUC := usecase.NewSimilarJobsUsecase(jobRepo, categoryRepo, cfg.Recommend, logger)

	recommendHandler := handler.NewRecommendationHandler(recommendUC)
	similarHandler := handler.NewSimilarJobsHandler(similarUC)

	withSubject := r.Group("", authMw.Middleware())
	recommendHandler.RegisterRoutes(withSubject)
	similarHandler.RegisterRoutes(r)
}
