package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wantok-jobs/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobRow is the normalized job DTO handed to the ranking engine. Optional
// store columns are resolved here so downstream code never branches on
// field presence: a missing inline category is a zero id and an empty slug.
type JobRow struct {
	ID                int64
	Title             string
	Location          string
	JobType           string
	SalaryMin         int64
	SalaryMax         int64
	SalaryCurrency    string
	CreatedAt         time.Time
	ViewsCount        int64
	ApplicationsCount int64
	EmployerID        int64
	CategorySlug      string
	CategoryID        int64
	Skills            string
	Industry          string
	IsFeatured        bool
	FeaturedUntil     *time.Time
	CompanyName       string
	LogoURL           string
	EmployerVerified  bool
}

type JobRepository interface {
	// ListActiveJobs returns the most recent active jobs, skipping the given
	// ids. It is the candidate pool feed for the weighted ranking modes.
	ListActiveJobs(ctx context.Context, excludeIDs []int64, limit int) ([]JobRow, error)

	// ListPopularJobs returns active jobs pre-ordered for the popular mode:
	// currently-featured first, then a views/applications blend, then recency.
	ListPopularJobs(ctx context.Context, limit int) ([]JobRow, error)

	FindByID(ctx context.Context, jobID int64) (JobRow, error)
}

const jobRowColumns = `
	j.id, COALESCE(j.title, ''), COALESCE(j.location, ''), COALESCE(j.job_type, ''),
	COALESCE(j.salary_min, 0), COALESCE(j.salary_max, 0), COALESCE(j.salary_currency, ''),
	j.created_at, COALESCE(j.views_count, 0),
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id),
	j.employer_id, COALESCE(j.category_slug, ''), COALESCE(j.category_id, 0),
	COALESCE(j.skills, ''), COALESCE(j.industry, ''),
	COALESCE(j.is_featured, FALSE), j.featured_until,
	COALESCE(j.company_display_name, ''), COALESCE(pe.company_name, ''),
	COALESCE(j.logo_url, ''), COALESCE(pe.logo_url, ''),
	COALESCE(u.is_verified, FALSE)`

const jobRowJoins = `
	FROM jobs j
	JOIN users u ON u.id = j.employer_id
	LEFT JOIN profiles_employer pe ON pe.user_id = j.employer_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListActiveJobs(ctx context.Context, excludeIDs []int64, limit int) ([]JobRow, error) {
	if limit <= 0 {
		limit = 200
	}
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT`+jobRowColumns+jobRowJoins+`
		 WHERE j.status = 'active' AND NOT (j.id = ANY($1))
		 ORDER BY j.created_at DESC
		 LIMIT $2`,
		excludeIDs, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}

func (r *PostgresJobRepository) ListPopularJobs(ctx context.Context, limit int) ([]JobRow, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT`+jobRowColumns+jobRowJoins+`
		 WHERE j.status = 'active'
		 ORDER BY
		   CASE WHEN COALESCE(j.is_featured, FALSE)
		             AND (j.featured_until IS NULL OR j.featured_until > NOW())
		        THEN 0 ELSE 1 END,
		   (COALESCE(j.views_count, 0) * 0.4
		     + (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) * 0.6) DESC,
		   j.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID int64) (JobRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+jobRowColumns+jobRowJoins+`
		 WHERE j.id = $1`,
		jobID,
	)

	j, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return JobRow{}, ErrJobNotFound
		}
		return JobRow{}, err
	}
	return j, nil
}

func scanJobRows(rows database.Rows) ([]JobRow, error) {
	out := make([]JobRow, 0)
	for rows.Next() {
		j, err := scanJobRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJobRow(s scanner) (JobRow, error) {
	var (
		j                  JobRow
		displayName        string
		profileCompanyName string
		jobLogo            string
		profileLogo        string
	)
	if err := s.Scan(
		&j.ID, &j.Title, &j.Location, &j.JobType,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency,
		&j.CreatedAt, &j.ViewsCount, &j.ApplicationsCount,
		&j.EmployerID, &j.CategorySlug, &j.CategoryID,
		&j.Skills, &j.Industry,
		&j.IsFeatured, &j.FeaturedUntil,
		&displayName, &profileCompanyName,
		&jobLogo, &profileLogo,
		&j.EmployerVerified,
	); err != nil {
		return JobRow{}, err
	}

	j.CompanyName = resolveCompanyName(displayName, profileCompanyName)
	j.LogoURL = resolveLogoURL(jobLogo, profileLogo)
	return j, nil
}

// resolveCompanyName prefers the job-level display-name override, falling
// back to the employer profile's company name.
func resolveCompanyName(displayName, profileName string) string {
	if displayName != "" {
		return displayName
	}
	return profileName
}

// resolveLogoURL prefers the job-level logo, falling back to the employer
// profile's logo.
func resolveLogoURL(jobLogo, profileLogo string) string {
	if jobLogo != "" {
		return jobLogo
	}
	return profileLogo
}
