package handler

import (
	"strconv"

	"wantok-jobs/internal/delivery/http/dto"
	"wantok-jobs/internal/delivery/http/middleware"
	"wantok-jobs/internal/pkg/response"
	"wantok-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultSimilarLimit = 6
	maxSimilarLimit     = 12
)

type SimilarJobsHandler struct {
	uc usecase.SimilarJobsUsecase
}

func NewSimilarJobsHandler(uc usecase.SimilarJobsUsecase) *SimilarJobsHandler {
	return &SimilarJobsHandler{uc: uc}
}

func (h *SimilarJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:id/similar", h.GetSimilarJobs)
}

// GetSimilarJobs returns jobs ranked against the reference job. A reference
// that no longer exists yields an empty list, not an error page.
func (h *SimilarJobsHandler) GetSimilarJobs(c fiber.Ctx) error {
	jobID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || jobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	limit := parseQueryInt(c, "limit", defaultSimilarLimit)
	if limit < 1 {
		limit = defaultSimilarLimit
	}
	if limit > maxSimilarLimit {
		limit = maxSimilarLimit
	}

	items, err := h.uc.SimilarJobs(c.Context(), jobID, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SimilarJobsResponse{
		Items: toRecommendedJobResponses(items),
	})
}
