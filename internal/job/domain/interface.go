package domain

//go:generate mockgen -destination=../../mocks/mock_job_repository.go -package=mocks github.com/ibiraza1077-pixel/job-tracker/internal/job/domain JobRepository

import "context"

// JobRepository is owner-scoped throughout: every method filters by the
// owner's account id in the same statement that reads or mutates, so a row
// belonging to someone else is indistinguishable from a missing row.
type JobRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]JobApplication, error)
	// GetByID returns (nil, nil) when no owned row matches.
	GetByID(ctx context.Context, id, ownerID string) (*JobApplication, error)
	Create(ctx context.Context, job *JobApplication) error
	// Update applies all mutable fields in one statement and returns the
	// updated row, or (nil, nil) when no owned row matched.
	Update(ctx context.Context, job *JobApplication) (*JobApplication, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
