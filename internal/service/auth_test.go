package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/workshop/internal/testutil"
	"github.com/Skotchmaster/workshop/internal/tokens"
)

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	alice := testutil.CreateUser(t, env.DB, "Alice", "alice@example.com", "secret1")
	svc := &AuthService{Repo: env.Repo, JWTSecret: []byte("k"), TokenTTL: time.Hour}

	resp, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.EqualValues(t, 3600, resp.ExpiresIn)

	claims, err := tokens.AccessClaimsFromToken(resp.AccessToken, []byte("k"))
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, alice.ID, id)
}

func TestAuthService_LoginRejects(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateUser(t, env.DB, "Alice", "alice@example.com", "secret1")
	svc := &AuthService{Repo: env.Repo, JWTSecret: []byte("k")}
	ctx := context.Background()

	_, err := svc.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrValidation)
}
