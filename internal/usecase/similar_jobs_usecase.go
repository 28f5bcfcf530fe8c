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

const defaultSimilarLimit = 6

type SimilarJobsUsecase interface {
	SimilarJobs(ctx context.Context, jobID int64, limit int) ([]RecommendedJob, error)
}

type SimilarJobs struct {
	jobs       repository.JobRepository
	categories repository.CategoryRepository
	logger     *log.Logger

	poolSize int

	now func() time.Time
}

func NewSimilarJobsUsecase(
	jobs repository.JobRepository,
	categories repository.CategoryRepository,
	cfg config.RecommendConfig,
	logger *log.Logger,
) *SimilarJobs {
	poolSize := cfg.SimilarPoolSize
	if poolSize <= 0 {
		poolSize = 150
	}
	return &SimilarJobs{
		jobs:       jobs,
		categories: categories,
		logger:     logger,
		poolSize:   poolSize,
		now:        time.Now,
	}
}

// SimilarJobs ranks active jobs against one reference job. A missing
// reference yields an empty list by contract, not an error; the reference
// itself is excluded from the pool.
func (u *SimilarJobs) SimilarJobs(ctx context.Context, jobID int64, limit int) ([]RecommendedJob, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	ref, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return []RecommendedJob{}, nil
		}
		u.logf("[Similar] reference lookup failed job=%d: %v", jobID, err)
		return nil, ErrInternal
	}

	subject := u.buildJobSubject(ctx, ref)

	rows, err := u.jobs.ListActiveJobs(ctx, []int64{jobID}, u.poolSize)
	if err != nil {
		u.logf("[Similar] candidate query failed job=%d: %v", jobID, err)
		return nil, ErrInternal
	}

	return scoreAndRank(ctx, u.categories, u.logger, rows, subject, limit, ranking.ScoreSimilar, u.now()), nil
}

func (u *SimilarJobs) buildJobSubject(ctx context.Context, ref repository.JobRow) ranking.Subject {
	slugs, err := u.categories.SlugsForJobs(ctx, []int64{ref.ID})
	if err != nil {
		u.logf("[Similar] reference categories failed job=%d: %v", ref.ID, err)
		slugs = nil
	}

	refSlugs := append([]string(nil), slugs[ref.ID]...)
	if ref.CategorySlug != "" {
		refSlugs = append(refSlugs, ref.CategorySlug)
	}
	var refIDs []int64
	if ref.CategoryID != 0 {
		refIDs = []int64{ref.CategoryID}
	}

	return ranking.JobSubject(ref.Title, ref.Skills, ref.Location, refSlugs, refIDs, ref.EmployerID)
}

func (u *SimilarJobs) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
