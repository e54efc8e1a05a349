package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/domain"
	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/dto"
	autherror "github.com/ibiraza1077-pixel/job-tracker/internal/errors"
	"github.com/ibiraza1077-pixel/job-tracker/pkg/constant"
)

type AccountService struct {
	repo   domain.AccountRepository
	tokens TokenGenerator
}

func NewAccountService(repo domain.AccountRepository, tokens TokenGenerator) *AccountService {
	return &AccountService{
		repo:   repo,
		tokens: tokens,
	}
}

// Signup creates an account and issues a token scoped to it. The email match
// is case-sensitive against the stored value.
func (s *AccountService) Signup(ctx context.Context, input dto.SignupInput) (*domain.Account, string, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", autherror.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constant.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	account := &domain.Account{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, _, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password produce the same error.
func (s *AccountService) Login(ctx context.Context, input dto.LoginInput) (*domain.Account, string, error) {
	account, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}

	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", autherror.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}
