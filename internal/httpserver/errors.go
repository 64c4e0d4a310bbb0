package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/service"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "resource is still referenced"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, service.ErrStorage) && errors.Is(err, repo.ErrDuplicate):
		return http.StatusConflict, "duplicate key"
	}
	return http.StatusInternalServerError, "internal error"
}

// fail logs err under "<op>_error" and turns it into an HTTP error.
func fail(l *slog.Logger, op string, err error) error {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		l.Error(op+"_error", "status", status, "reason", msg, "error", err)
	} else {
		l.Warn(op+"_error", "status", status, "reason", msg, "error", err)
	}
	return echo.NewHTTPError(status, msg)
}

func badRequest(l *slog.Logger, op, reason string, err error) error {
	l.Warn(op+"_error", "status", 400, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}
