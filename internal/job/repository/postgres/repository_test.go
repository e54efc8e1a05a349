package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibiraza1077-pixel/job-tracker/internal/job/domain"
	repo "github.com/ibiraza1077-pixel/job-tracker/internal/job/repository/postgres"
)

var jobColumns = []string{"id", "company", "role", "status", "date_applied", "notes", "user_id", "created_at"}

func TestListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewJobRepository(mock)
	ctx := context.Background()
	ownerID := "owner-123"

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, company").
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows(jobColumns).
				AddRow("job-2", "Beta", "Engineer", "Interview", now, "", ownerID, now).
				AddRow("job-1", "Acme", "Engineer", "Applied", now, "a note", ownerID, now))

		jobs, err := r.ListByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "job-2", jobs[0].ID)
		assert.Equal(t, "a note", jobs[1].Notes)
		assert.Equal(t, ownerID, jobs[0].OwnerID)
	})

	t.Run("no rows yields empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, company").
			WithArgs(ownerID).
			WillReturnRows(pgxmock.NewRows(jobColumns))

		jobs, err := r.ListByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, company").
			WithArgs(ownerID).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ListByOwner(ctx, ownerID)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewJobRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, company").
			WithArgs("job-1", "owner-123").
			WillReturnRows(pgxmock.NewRows(jobColumns).
				AddRow("job-1", "Acme", "Engineer", "Applied", now, "", "owner-123", now))

		job, err := r.GetByID(ctx, "job-1", "owner-123")
		require.NoError(t, err)
		assert.Equal(t, "job-1", job.ID)
		assert.Equal(t, "owner-123", job.OwnerID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, company").
			WithArgs("job-1", "someone-else").
			WillReturnError(pgx.ErrNoRows)

		job, err := r.GetByID(ctx, "job-1", "someone-else")
		require.NoError(t, err) // Should return nil job, nil error
		assert.Nil(t, job)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, company").
			WithArgs("job-1", "owner-123").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByID(ctx, "job-1", "owner-123")
		assert.Error(t, err)
	})
}

func TestCreateJob(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewJobRepository(mock)
	ctx := context.Background()

	job := &domain.JobApplication{
		ID:          "job-1",
		Company:     "Acme",
		Role:        "Engineer",
		Status:      "Applied",
		DateApplied: time.Now(),
		Notes:       "",
		OwnerID:     "owner-123",
		CreatedAt:   time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO jobs").
			WithArgs(job.ID, job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.OwnerID, job.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, job))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO jobs").
			WithArgs(job.ID, job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.OwnerID, job.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, job))
	})
}

func TestUpdateJob(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewJobRepository(mock)
	ctx := context.Background()

	job := &domain.JobApplication{
		ID:          "job-1",
		Company:     "Acme",
		Role:        "Senior Engineer",
		Status:      "Offer",
		DateApplied: time.Now(),
		Notes:       "counter-offer pending",
		OwnerID:     "owner-123",
	}

	t.Run("success returns the updated row", func(t *testing.T) {
		createdAt := time.Now().Add(-24 * time.Hour)
		mock.ExpectQuery("UPDATE jobs").
			WithArgs(job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.ID, job.OwnerID).
			WillReturnRows(pgxmock.NewRows(jobColumns).
				AddRow(job.ID, job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.OwnerID, createdAt))

		updated, err := r.Update(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, "Senior Engineer", updated.Role)
		assert.Equal(t, job.OwnerID, updated.OwnerID)
		assert.Equal(t, createdAt, updated.CreatedAt)
	})

	t.Run("no matching row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE jobs").
			WithArgs(job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.ID, job.OwnerID).
			WillReturnError(pgx.ErrNoRows)

		updated, err := r.Update(ctx, job)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("UPDATE jobs").
			WithArgs(job.Company, job.Role, job.Status, job.DateApplied, job.Notes, job.ID, job.OwnerID).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.Update(ctx, job)
		assert.Error(t, err)
	})
}

func TestDeleteJob(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewJobRepository(mock)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM jobs").
			WithArgs("job-1", "owner-123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := r.Delete(ctx, "job-1", "owner-123")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("nothing matched", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM jobs").
			WithArgs("job-1", "someone-else").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := r.Delete(ctx, "job-1", "someone-else")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM jobs").
			WithArgs("job-1", "owner-123").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.Delete(ctx, "job-1", "owner-123")
		assert.Error(t, err)
	})
}
