package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/testutil"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Events *testutil.Recorder
	Token  string
}

func newTestEnv(t *testing.T, secret []byte) *testEnv {
	t.Helper()
	db := testutil.OpenTestDB(t)
	r := &repo.GormRepo{DB: db}
	rec := &testutil.Recorder{}
	now := func() time.Time { return testutil.FixedTime }

	d := &Deps{
		Users:      &UserHTTP{Svc: &service.UserService{Repo: r}},
		Categories: &CategoryHTTP{Svc: &service.CategoryService{Repo: r}},
		Products: &ProductHTTP{
			Svc:    &service.ProductService{Repo: r, Producer: rec},
			Search: &service.SearchService{Repo: r},
		},
		Orders:     &OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: rec, Now: now}},
		OrderItems: &OrderItemHTTP{Svc: &service.OrderItemService{Repo: r, Producer: rec}},
		Payments:   &PaymentHTTP{Svc: &service.PaymentService{Repo: r, Producer: rec, Now: now}},
		Auth:       &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: secret, TokenTTL: time.Minute}},
		JWTSecret:  secret,
		Ready:      func(ctx context.Context) error { return nil },
	}

	return &testEnv{
		T:      t,
		E:      New(logging.NewWithWriter(io.Discard, "error"), d),
		DB:     db,
		Events: rec,
	}
}

func (env *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if env.Token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.Token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
