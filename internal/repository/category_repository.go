package repository

import (
	"context"

	"wantok-jobs/internal/database"
)

type CategoryRepository interface {
	// SlugsForJobs resolves join-table category memberships for the whole
	// candidate id set in one query, keyed by job id.
	SlugsForJobs(ctx context.Context, jobIDs []int64) (map[int64][]string, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) SlugsForJobs(ctx context.Context, jobIDs []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT jc.job_id, c.slug
		 FROM job_categories jc
		 JOIN categories c ON c.id = jc.category_id
		 WHERE jc.job_id = ANY($1)`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			jobID int64
			slug  string
		)
		if err := rows.Scan(&jobID, &slug); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], slug)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
