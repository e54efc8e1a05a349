package dto

import (
	"time"

	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/domain"
)

type AccountOutput struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type AuthResponse struct {
	User  AccountOutput `json:"user"`
	Token string        `json:"token"`
}

// NewSignupResponse includes created_at; login responses only carry the
// account summary.
func NewSignupResponse(account *domain.Account, token string) AuthResponse {
	createdAt := account.CreatedAt

	return AuthResponse{
		User: AccountOutput{
			ID:        account.ID,
			Email:     account.Email,
			CreatedAt: &createdAt,
		},
		Token: token,
	}
}

func NewLoginResponse(account *domain.Account, token string) AuthResponse {
	return AuthResponse{
		User: AccountOutput{
			ID:    account.ID,
			Email: account.Email,
		},
		Token: token,
	}
}
