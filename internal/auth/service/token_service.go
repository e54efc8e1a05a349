package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/ibiraza1077-pixel/job-tracker/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(accountID, email string) (string, time.Time, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"user_id"`
	Email     string `json:"email"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Generate signs a stateless identity token for the account. Nothing is
// persisted; the signature and expiry are the only validity checks.
func (ts *TokenService) Generate(accountID, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.TokenExpiry)

	claims := JWTCustomClaims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates the given token string.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
