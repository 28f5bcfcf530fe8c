package repository

import (
	"context"
	"database/sql"
	"errors"

	"wantok-jobs/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("jobseeker profile not found")

// JobseekerProfile carries the personalization inputs read from the profile
// record. SkillsJSON is the raw JSON-encoded skills field; parsing it is the
// caller's concern so a malformed value degrades visibly, not silently.
type JobseekerProfile struct {
	UserID     int64
	Location   string
	SkillsJSON string
}

// CategoryAffinity is the set of categories inferred from a user's past
// applications and saved jobs. Both identifier forms occur in the store and
// are treated as equivalent.
type CategoryAffinity struct {
	Slugs []string
	IDs   []int64
}

type ProfileRepository interface {
	FindJobseekerProfile(ctx context.Context, userID int64) (JobseekerProfile, error)

	// UserSkillNames returns the relational half of the user's skills, from
	// the user_skills join. The JSON half lives on the profile record.
	UserSkillNames(ctx context.Context, userID int64) ([]string, error)

	AffinityCategories(ctx context.Context, userID int64) (CategoryAffinity, error)

	AppliedJobIDs(ctx context.Context, userID int64) ([]int64, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindJobseekerProfile(ctx context.Context, userID int64) (JobseekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(location, ''), COALESCE(skills, '')
		 FROM profiles_jobseeker
		 WHERE user_id = $1`,
		userID,
	)

	var p JobseekerProfile
	if err := row.Scan(&p.UserID, &p.Location, &p.SkillsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return JobseekerProfile{}, ErrProfileNotFound
		}
		return JobseekerProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) UserSkillNames(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.name
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) AffinityCategories(ctx context.Context, userID int64) (CategoryAffinity, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT COALESCE(j.category_slug, ''), COALESCE(j.category_id, 0)
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.jobseeker_id = $1
		 UNION
		 SELECT DISTINCT COALESCE(j.category_slug, ''), COALESCE(j.category_id, 0)
		 FROM saved_jobs sj
		 JOIN jobs j ON j.id = sj.job_id
		 WHERE sj.user_id = $1`,
		userID,
	)
	if err != nil {
		return CategoryAffinity{}, err
	}
	defer rows.Close()

	var aff CategoryAffinity
	seenSlugs := make(map[string]struct{})
	seenIDs := make(map[int64]struct{})
	for rows.Next() {
		var (
			slug string
			id   int64
		)
		if err := rows.Scan(&slug, &id); err != nil {
			return CategoryAffinity{}, err
		}
		if slug != "" {
			if _, ok := seenSlugs[slug]; !ok {
				seenSlugs[slug] = struct{}{}
				aff.Slugs = append(aff.Slugs, slug)
			}
		}
		if id != 0 {
			if _, ok := seenIDs[id]; !ok {
				seenIDs[id] = struct{}{}
				aff.IDs = append(aff.IDs, id)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return CategoryAffinity{}, err
	}
	return aff, nil
}

func (r *PostgresProfileRepository) AppliedJobIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM applications WHERE jobseeker_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
