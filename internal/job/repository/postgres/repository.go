package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ibiraza1077-pixel/job-tracker/internal/job/domain"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type JobRepository struct {
	db DB
}

func NewJobRepository(db DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.JobApplication, error) {
	query := `
		SELECT id, company, role, status, date_applied, COALESCE(notes, ''), user_id, created_at
		FROM jobs
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.JobApplication{}
	for rows.Next() {
		var job domain.JobApplication
		if err := rows.Scan(&job.ID, &job.Company, &job.Role, &job.Status,
			&job.DateApplied, &job.Notes, &job.OwnerID, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.JobApplication, error) {
	query := `
		SELECT id, company, role, status, date_applied, COALESCE(notes, ''), user_id, created_at
		FROM jobs
		WHERE id = $1 AND user_id = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)

	var job domain.JobApplication
	err := row.Scan(&job.ID, &job.Company, &job.Role, &job.Status,
		&job.DateApplied, &job.Notes, &job.OwnerID, &job.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.JobApplication) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO jobs (id, company, role, status, date_applied, notes, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, job.ID, job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.OwnerID, job.CreatedAt)

	return err
}

// Update filters and mutates in a single statement so the ownership check and
// the write cannot race.
func (r *JobRepository) Update(ctx context.Context, job *domain.JobApplication) (*domain.JobApplication, error) {
	query := `
		UPDATE jobs
		SET company = $1, role = $2, status = $3, date_applied = $4, notes = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, company, role, status, date_applied, COALESCE(notes, ''), user_id, created_at;
	`
	row := r.db.QueryRow(ctx, query,
		job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.ID, job.OwnerID)

	var updated domain.JobApplication
	err := row.Scan(&updated.ID, &updated.Company, &updated.Role, &updated.Status,
		&updated.DateApplied, &updated.Notes, &updated.OwnerID, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &updated, nil
}

func (r *JobRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        DELETE FROM jobs
        WHERE id = $1 AND user_id = $2
    `, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
