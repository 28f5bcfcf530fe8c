package usecase

import (
	"context"
	"time"
)

// RecommendationCache is the injected cache collaborator. A nil or
// unavailable cache degrades to recomputation on every call.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// PopularRecommendationsCacheKey is the single key for the popular list.
// One fixed-size list is cached and sliced per request, so no per-limit
// keys exist.
const PopularRecommendationsCacheKey = "recommendations:popular"
