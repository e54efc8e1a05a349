package dto

import (
	"time"

	"github.com/ibiraza1077-pixel/job-tracker/internal/job/domain"
	"github.com/ibiraza1077-pixel/job-tracker/pkg/constant"
)

type JobInput struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	DateApplied string `json:"date_applied"`
	Notes       string `json:"notes"`
}

type JobOutput struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	DateApplied string    `json:"date_applied"`
	Notes       string    `json:"notes"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewJobOutput(job *domain.JobApplication) JobOutput {
	return JobOutput{
		ID:          job.ID,
		Company:     job.Company,
		Role:        job.Role,
		Status:      job.Status,
		DateApplied: job.DateApplied.Format(constant.DateLayout),
		Notes:       job.Notes,
		UserID:      job.OwnerID,
		CreatedAt:   job.CreatedAt,
	}
}

func NewJobList(jobs []domain.JobApplication) []JobOutput {
	out := make([]JobOutput, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobOutput(&jobs[i]))
	}
	return out
}
