package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bind(c, l, "login", &req); err != nil {
		return err
	}
	tok, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "login", err)
	}

	l.Info("login_success", "email", req.Email)
	return c.JSON(http.StatusOK, tok)
}
