package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	autherror "github.com/ibiraza1077-pixel/job-tracker/internal/errors"
	"github.com/ibiraza1077-pixel/job-tracker/internal/job/domain"
	"github.com/ibiraza1077-pixel/job-tracker/internal/job/dto"
	"github.com/ibiraza1077-pixel/job-tracker/pkg/constant"
)

type JobService struct {
	repo domain.JobRepository
}

func NewJobService(repo domain.JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) List(ctx context.Context, ownerID string) ([]domain.JobApplication, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *JobService) Get(ctx context.Context, id, ownerID string) (*domain.JobApplication, error) {
	job, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, autherror.ErrJobNotFound
	}
	return job, nil
}

// Create validates the input, fills defaults and forces the owner to the
// caller regardless of anything in the payload.
func (s *JobService) Create(ctx context.Context, ownerID string, input dto.JobInput) (*domain.JobApplication, error) {
	status, dateApplied, err := normalize(input)
	if err != nil {
		return nil, err
	}

	job := &domain.JobApplication{
		ID:          uuid.New().String(),
		Company:     input.Company,
		Role:        input.Role,
		Status:      status,
		DateApplied: dateApplied,
		Notes:       input.Notes,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// Update replaces all mutable fields of the owned row. The owner id is never
// part of the update set.
func (s *JobService) Update(ctx context.Context, id, ownerID string, input dto.JobInput) (*domain.JobApplication, error) {
	status, dateApplied, err := normalize(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &domain.JobApplication{
		ID:          id,
		Company:     input.Company,
		Role:        input.Role,
		Status:      status,
		DateApplied: dateApplied,
		Notes:       input.Notes,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, autherror.ErrJobNotFound
	}

	return updated, nil
}

func (s *JobService) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return autherror.ErrJobNotFound
	}
	return nil
}

// normalize checks required fields and applies the documented defaults:
// status "Applied", date_applied today.
func normalize(input dto.JobInput) (string, time.Time, error) {
	if strings.TrimSpace(input.Company) == "" {
		return "", time.Time{}, autherror.ErrCompanyRequired
	}
	if strings.TrimSpace(input.Role) == "" {
		return "", time.Time{}, autherror.ErrRoleRequired
	}

	status := input.Status
	if status == "" {
		status = constant.DefaultJobStatus
	}
	if !domain.ValidStatus(status) {
		return "", time.Time{}, autherror.ErrInvalidStatus
	}

	dateApplied := time.Now()
	if input.DateApplied != "" {
		parsed, err := time.Parse(constant.DateLayout, input.DateApplied)
		if err != nil {
			return "", time.Time{}, autherror.ErrInvalidDate
		}
		dateApplied = parsed
	}

	return status, dateApplied, nil
}
