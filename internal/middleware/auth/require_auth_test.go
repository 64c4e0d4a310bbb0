package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/workshop/internal/tokens"
)

var secret = []byte("mw-secret")

func run(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/workshop/users", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c)
	return rec, c, err
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tok, err := tokens.SignAccessToken(3, "alice@example.com", secret, time.Minute, time.Now())
	require.NoError(t, err)

	rec, c, err := run(t, RequireAuth(secret), "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, uint(3), c.Get(CtxUserID))
	assert.Equal(t, "alice@example.com", c.Get(CtxEmail))
}

func TestRequireAuth_Rejects(t *testing.T) {
	expired, err := tokens.SignAccessToken(3, "a@b.c", secret, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing": "",
		"scheme":  "Basic abc",
		"empty":   "Bearer  ",
		"garbage": "Bearer not.a.jwt",
		"expired": "Bearer " + expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, RequireAuth(secret), header)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}

func TestOptional_PassesThroughWithoutSecret(t *testing.T) {
	rec, _, err := run(t, Optional(nil), "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, _, err = run(t, Optional(secret), "")
	require.Error(t, err)
}
