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

	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/domain"
	repo "github.com/ibiraza1077-pixel/job-tracker/internal/auth/repository/postgres"
)

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	columns := []string{"id", "email", "password_hash", "created_at"}
	email := "test@example.com"

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("account-123", email, "hash", time.Now()))

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, "account-123", account.ID)
		assert.Equal(t, email, account.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err) // Should return nil account, nil error
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, email)
		assert.Error(t, err)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	r := repo.NewAccountRepository(mock)
	account := &domain.Account{
		ID:           "account-123",
		Email:        "new@example.com",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(account.ID, account.Email, account.PasswordHash, account.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, account)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(account.ID, account.Email, account.PasswordHash, account.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, account)
		assert.Error(t, err)
	})
}
