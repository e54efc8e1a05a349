package domain

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/ibiraza1077-pixel/job-tracker/internal/auth/domain AccountRepository

import "context"

type AccountRepository interface {
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}
