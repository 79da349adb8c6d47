package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobpilot/internal/types"
)

// ErrJobNotFound is returned when a job ID does not exist.
var ErrJobNotFound = errors.New("job not found")

// SaveJob inserts a scraped job and returns its ID. Jobs with a URL
// already present are updated in place, so re-scraping a board is
// idempotent.
func (db *DB) SaveJob(ctx context.Context, job *types.Job) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, url, location, description, requirements, benefits, source, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, 'scraped')
		 ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			requirements = EXCLUDED.requirements,
			benefits = EXCLUDED.benefits,
			updated_at = NOW()
		 RETURNING id`,
		job.Title, job.Company, job.URL, job.Location,
		job.Description, job.Requirements, job.Benefits, job.Source,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job: %w", err)
	}
	return id, nil
}

// UpdateJobScore stores the scoring result for a job.
func (db *DB) UpdateJobScore(ctx context.Context, id uuid.UUID, result *types.ScoreResult) error {
	skills, err := json.Marshal(result.ExtractedSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	reasons, err := json.Marshal(result.MatchReasons)
	if err != nil {
		return fmt.Errorf("failed to marshal match reasons: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET score = $1, skills = $2, match_reasons = $3, status = 'scored', updated_at = NOW()
		 WHERE id = $4`,
		result.Score, skills, reasons, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

// UpdateJobClassification stores visa and location metadata for a job.
func (db *DB) UpdateJobClassification(ctx context.Context, id uuid.UUID, visa types.VisaInfo, loc types.LocationInfo) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET visa_friendly = $1, country = NULLIF($2, ''), state_province = NULLIF($3, ''),
			city = NULLIF($4, ''), is_remote = $5, remote_type = NULLIF($6, ''), updated_at = NOW()
		 WHERE id = $7`,
		visa.VisaFriendly, loc.Country, loc.StateProvince, loc.City, loc.IsRemote, loc.RemoteType, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update job classification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

// GetJob retrieves a job by ID.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, title, company, COALESCE(url, ''), COALESCE(location, ''),
			COALESCE(description, ''), COALESCE(requirements, ''), COALESCE(benefits, ''),
			COALESCE(source, ''), status, COALESCE(score, 0), skills, match_reasons,
			COALESCE(visa_friendly, FALSE), COALESCE(country, ''), COALESCE(state_province, ''),
			COALESCE(city, ''), COALESCE(is_remote, FALSE), COALESCE(remote_type, '')
		 FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs returns jobs filtered by status and minimum score, most recent
// first. Empty status means any; minScore <= 0 means any.
func (db *DB) ListJobs(ctx context.Context, status string, minScore, limit int) ([]types.Job, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, COALESCE(url, ''), COALESCE(location, ''),
			COALESCE(description, ''), COALESCE(requirements, ''), COALESCE(benefits, ''),
			COALESCE(source, ''), status, COALESCE(score, 0), skills, match_reasons,
			COALESCE(visa_friendly, FALSE), COALESCE(country, ''), COALESCE(state_province, ''),
			COALESCE(city, ''), COALESCE(is_remote, FALSE), COALESCE(remote_type, '')
		 FROM jobs
		 WHERE ($1 = '' OR status = $1) AND ($2 <= 0 OR score >= $2)
		 ORDER BY created_at DESC
		 LIMIT $3`,
		status, minScore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	return jobs, nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var job types.Job
	var skills, reasons []byte

	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.URL, &job.Location,
		&job.Description, &job.Requirements, &job.Benefits,
		&job.Source, &job.Status, &job.Score, &skills, &reasons,
		&job.VisaFriendly, &job.Country, &job.StateProvince,
		&job.City, &job.IsRemote, &job.RemoteType,
	)
	if err != nil {
		return nil, err
	}

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &job.Skills); err != nil {
			return nil, fmt.Errorf("failed to decode skills column: %w", err)
		}
	}
	if len(reasons) > 0 {
		if err := json.Unmarshal(reasons, &job.MatchReasons); err != nil {
			return nil, fmt.Errorf("failed to decode match_reasons column: %w", err)
		}
	}

	return &job, nil
}
