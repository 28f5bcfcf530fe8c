package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"wantok-jobs/internal/config"
	"wantok-jobs/internal/domain/ranking"
	"wantok-jobs/internal/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

const (
	defaultRecommendationLimit = 10

	// popularCacheSize is the size of the one cached popular list: the
	// maximum limit the HTTP layer accepts, so a slice of the cached list
	// always satisfies any request.
	popularCacheSize = 20
)

type RecommendedJob struct {
	JobID             int64
	Title             string
	CompanyName       string
	LogoURL           string
	Location          string
	JobType           string
	SalaryMin         int64
	SalaryMax         int64
	SalaryCurrency    string
	CreatedAt         time.Time
	ViewsCount        int64
	ApplicationsCount int64
	IsFeatured        bool
	EmployerVerified  bool
	Score             float64
}

type RecommendationUsecase interface {
	Personalized(ctx context.Context, userID int64, limit int) ([]RecommendedJob, error)
	Popular(ctx context.Context, limit int) ([]RecommendedJob, error)
}

type Recommendation struct {
	jobs       repository.JobRepository
	categories repository.CategoryRepository
	profiles   repository.ProfileRepository
	cache      RecommendationCache
	logger     *log.Logger

	poolSize   int
	popularTTL time.Duration

	now func() time.Time
}

func NewRecommendationUsecase(
	jobs repository.JobRepository,
	categories repository.CategoryRepository,
	profiles repository.ProfileRepository,
	cache RecommendationCache,
	cfg config.RecommendConfig,
	logger *log.Logger,
) *Recommendation {
	poolSize := cfg.CandidatePoolSize
	if poolSize <= 0 {
		poolSize = 200
	}
	ttl := cfg.PopularCacheTTL
	if ttl <= 0 {
		ttl = 300 * time.Second
	}
	return &Recommendation{
		jobs:       jobs,
		categories: categories,
		profiles:   profiles,
		cache:      cache,
		logger:     logger,
		poolSize:   poolSize,
		popularTTL: ttl,
		now:        time.Now,
	}
}

// Personalized ranks active jobs against the user's profile, affinity and
// history. Every personalization lookup degrades to an empty signal on
// failure; only the candidate query itself is fatal.
func (u *Recommendation) Personalized(ctx context.Context, userID int64, limit int) ([]RecommendedJob, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	subject := u.buildProfileSubject(ctx, userID)

	excludeIDs, err := u.profiles.AppliedJobIDs(ctx, userID)
	if err != nil {
		u.logf("[Recommend] applied-jobs lookup failed user=%d: %v", userID, err)
		excludeIDs = nil
	}

	rows, err := u.jobs.ListActiveJobs(ctx, excludeIDs, u.poolSize)
	if err != nil {
		u.logf("[Recommend] candidate query failed user=%d: %v", userID, err)
		return nil, ErrInternal
	}

	return scoreAndRank(ctx, u.categories, u.logger, rows, subject, limit, ranking.ScorePersonalized, u.now()), nil
}

// Popular returns the anonymous-visitor list. One fixed-size list is cached
// for the configured TTL and sliced per request; the repository query does
// the featured/views/applications ordering, no weighted scoring runs here.
func (u *Recommendation) Popular(ctx context.Context, limit int) ([]RecommendedJob, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > popularCacheSize {
		limit = popularCacheSize
	}

	if u.cache != nil {
		var cached []RecommendedJob
		hit, err := u.cache.GetJSON(ctx, PopularRecommendationsCacheKey, &cached)
		if err == nil && hit {
			return truncate(cached, limit), nil
		}
	}

	rows, err := u.jobs.ListPopularJobs(ctx, popularCacheSize)
	if err != nil {
		u.logf("[Recommend] popular query failed: %v", err)
		return nil, ErrInternal
	}

	items := make([]RecommendedJob, 0, len(rows))
	for _, row := range rows {
		items = append(items, toRecommendedJob(row, 0))
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, PopularRecommendationsCacheKey, items, u.popularTTL); err != nil {
			u.logf("[Recommend] popular cache write failed: %v", err)
		}
	}

	return truncate(items, limit), nil
}

// buildProfileSubject gathers the personalization signals, treating every
// failed or empty lookup as zero signal.
func (u *Recommendation) buildProfileSubject(ctx context.Context, userID int64) ranking.Subject {
	var (
		location   string
		jsonSkills []string
	)

	profile, err := u.profiles.FindJobseekerProfile(ctx, userID)
	switch {
	case err == nil:
		location = profile.Location
		jsonSkills, err = ranking.ParseSkillsJSON(profile.SkillsJSON)
		if err != nil {
			u.logf("[Recommend] malformed profile skills user=%d: %v", userID, err)
			jsonSkills = nil
		}
	case errors.Is(err, repository.ErrProfileNotFound):
		// no profile yet; recency and popularity still rank
	default:
		u.logf("[Recommend] profile lookup failed user=%d: %v", userID, err)
	}

	names, err := u.profiles.UserSkillNames(ctx, userID)
	if err != nil {
		u.logf("[Recommend] user-skills lookup failed user=%d: %v", userID, err)
		names = nil
	}

	aff, err := u.profiles.AffinityCategories(ctx, userID)
	if err != nil {
		u.logf("[Recommend] affinity lookup failed user=%d: %v", userID, err)
		aff = repository.CategoryAffinity{}
	}

	return ranking.ProfileSubject(location, ranking.MergeSkills(names, jsonSkills), aff.Slugs, aff.IDs)
}

type scoreFunc func(ranking.Candidate, ranking.Subject, int64, time.Time) float64

// scoreAndRank runs the shared extract-score-sort tail of the weighted modes.
// A failed category-membership lookup degrades to inline categories only.
func scoreAndRank(ctx context.Context, categories repository.CategoryRepository, logger *log.Logger, rows []repository.JobRow, subject ranking.Subject, limit int, score scoreFunc, now time.Time) []RecommendedJob {
	if len(rows) == 0 {
		return []RecommendedJob{}
	}

	ids := make([]int64, 0, len(rows))
	rowByID := make(map[int64]repository.JobRow, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
		rowByID[row.ID] = row
	}

	catMap, err := categories.SlugsForJobs(ctx, ids)
	if err != nil {
		if logger != nil {
			logger.Printf("[Recommend] category lookup failed: %v", err)
		}
		catMap = nil
	}

	candidates := make([]ranking.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toCandidate(row, catMap))
	}

	maxViews := ranking.MaxViews(candidates)

	scored := make([]ranking.ScoredJob, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ranking.ScoredJob{Candidate: c, Score: score(c, subject, maxViews, now)})
	}

	ranked := ranking.Rank(scored, limit)

	out := make([]RecommendedJob, 0, len(ranked))
	for _, sj := range ranked {
		out = append(out, toRecommendedJob(rowByID[sj.ID], sj.Score))
	}
	return out
}

func toCandidate(row repository.JobRow, catMap map[int64][]string) ranking.Candidate {
	slugs := append([]string(nil), catMap[row.ID]...)
	if row.CategorySlug != "" {
		slugs = append(slugs, row.CategorySlug)
	}
	var catIDs []int64
	if row.CategoryID != 0 {
		catIDs = []int64{row.CategoryID}
	}
	return ranking.Candidate{
		ID:            row.ID,
		Title:         row.Title,
		SkillsText:    row.Skills,
		Location:      row.Location,
		CategorySlugs: slugs,
		CategoryIDs:   catIDs,
		CreatedAt:     row.CreatedAt,
		Views:         row.ViewsCount,
		EmployerID:    row.EmployerID,
	}
}

func toRecommendedJob(row repository.JobRow, score float64) RecommendedJob {
	return RecommendedJob{
		JobID:             row.ID,
		Title:             row.Title,
		CompanyName:       row.CompanyName,
		LogoURL:           row.LogoURL,
		Location:          row.Location,
		JobType:           row.JobType,
		SalaryMin:         row.SalaryMin,
		SalaryMax:         row.SalaryMax,
		SalaryCurrency:    row.SalaryCurrency,
		CreatedAt:         row.CreatedAt,
		ViewsCount:        row.ViewsCount,
		ApplicationsCount: row.ApplicationsCount,
		IsFeatured:        row.IsFeatured,
		EmployerVerified:  row.EmployerVerified,
		Score:             score,
	}
}

func truncate(items []RecommendedJob, limit int) []RecommendedJob {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (u *Recommendation) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
