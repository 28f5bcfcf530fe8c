package handler

import (
	"errors"
	"strconv"

	"wantok-jobs/internal/delivery/http/dto"
	"wantok-jobs/internal/delivery/http/middleware"
	"wantok-jobs/internal/pkg/jwt"
	"wantok-jobs/internal/pkg/response"
	"wantok-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultRecommendationsLimit = 10
	maxRecommendationsLimit     = 20
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

// GetRecommendations serves both ranking modes behind one route: an
// authenticated jobseeker gets the personalized list, everyone else the
// popular one. The response names the mode used.
func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", defaultRecommendationsLimit)
	if limit < 1 {
		limit = defaultRecommendationsLimit
	}
	if limit > maxRecommendationsLimit {
		limit = maxRecommendationsLimit
	}

	userID, _ := c.Locals(middleware.CtxUserIDKey).(int64)
	role, _ := c.Locals(middleware.CtxRoleKey).(string)

	var (
		items []usecase.RecommendedJob
		mode  string
		err   error
	)
	if userID > 0 && role == jwt.RoleJobseeker {
		items, err = h.uc.Personalized(c.Context(), userID, limit)
		mode = dto.RecommendationModePersonalized
	} else {
		items, err = h.uc.Popular(c.Context(), limit)
		mode = dto.RecommendationModePopular
	}
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendationsResponse{
		Mode:  mode,
		Items: toRecommendedJobResponses(items),
	})
}

func toRecommendedJobResponses(items []usecase.RecommendedJob) []dto.RecommendedJobResponse {
	out := make([]dto.RecommendedJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendedJobResponse{
			JobID:             it.JobID,
			Title:             it.Title,
			CompanyName:       it.CompanyName,
			LogoURL:           it.LogoURL,
			Location:          it.Location,
			JobType:           it.JobType,
			SalaryMin:         it.SalaryMin,
			SalaryMax:         it.SalaryMax,
			SalaryCurrency:    it.SalaryCurrency,
			CreatedAt:         it.CreatedAt,
			ViewsCount:        it.ViewsCount,
			ApplicationsCount: it.ApplicationsCount,
			IsFeatured:        it.IsFeatured,
			EmployerVerified:  it.EmployerVerified,
			Score:             it.Score,
		})
	}
	return out
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
