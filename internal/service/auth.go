package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/workshop/internal/hash"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/tokens"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*transport.TokenResponse, error) {
	if email == "" || password == "" {
		return nil, invalid("email and password required")
	}
	if len(s.JWTSecret) == 0 {
		return nil, fmt.Errorf("%w: token signing is not configured", ErrStorage)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, passErr(err)
	}
	if !hash.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	tok, err := tokens.SignAccessToken(user.ID, user.Email, s.JWTSecret, ttl, time.Now())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &transport.TokenResponse{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
