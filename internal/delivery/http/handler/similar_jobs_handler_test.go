package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"wantok-jobs/internal/delivery/http/middleware"
	"wantok-jobs/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type mockSimilarJobsUC struct {
	items     []usecase.RecommendedJob
	err       error
	lastJobID int64
	lastLimit int
}

func (m *mockSimilarJobsUC) SimilarJobs(_ context.Context, jobID int64, limit int) ([]usecase.RecommendedJob, error) {
	m.lastJobID = jobID
	m.lastLimit = limit
	return m.items, m.err
}

func newSimilarTestApp(uc usecase.SimilarJobsUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewSimilarJobsHandler(uc).RegisterRoutes(app)
	return app
}

func TestGetSimilarJobs_MissingReferenceIsEmptyOK(t *testing.T) {
	uc := &mockSimilarJobsUC{items: []usecase.RecommendedJob{}}
	app := newSimilarTestApp(uc)

	res, err := app.Test(httptest.NewRequest("GET", "/jobs/999/similar", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	var env struct {
		Data struct {
			Items []json.RawMessage `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	if len(env.Data.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(env.Data.Items))
	}
	if uc.lastJobID != 999 {
		t.Fatalf("expected job id 999, got %d", uc.lastJobID)
	}
}

func TestGetSimilarJobs_InvalidIDIsBadRequest(t *testing.T) {
	app := newSimilarTestApp(&mockSimilarJobsUC{})

	res, err := app.Test(httptest.NewRequest("GET", "/jobs/abc/similar", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestGetSimilarJobs_LimitCapped(t *testing.T) {
	uc := &mockSimilarJobsUC{}
	app := newSimilarTestApp(uc)

	res, err := app.Test(httptest.NewRequest("GET", "/jobs/1/similar?limit=50", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	if uc.lastLimit != maxSimilarLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxSimilarLimit, uc.lastLimit)
	}
}
