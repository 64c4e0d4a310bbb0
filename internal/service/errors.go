package service

import (
	"errors"
	"fmt"

	"github.com/Skotchmaster/workshop/internal/repo"
)

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrNotFound           = errors.New("not found")           // 404
	ErrConflict           = errors.New("conflict")            // 409
	ErrStorage            = errors.New("storage")             // 500, 409 on duplicate key
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
)

func notFound(what string, id any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, what, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// lookupErr maps a failed read of one entity.
func lookupErr(err error, what string, id any) error {
	if repo.IsNotFound(err) {
		return notFound(what, id)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// deleteErr maps a failed delete: a row still referenced elsewhere is a
// conflict, not a storage failure.
func deleteErr(err error, what string, id any) error {
	switch {
	case repo.IsNotFound(err):
		return notFound(what, id)
	case repo.IsIntegrityViolation(err):
		return fmt.Errorf("%w: %s %v is still referenced: %w", ErrConflict, what, id, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// passErr leaves domain errors untouched and wraps anything else as storage.
func passErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrStorage, ErrInvalidCredentials} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
