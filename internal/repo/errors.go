package repo

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = gorm.ErrRecordNotFound
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("foreign key violation")
	ErrCheck      = errors.New("check constraint violation")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIntegrityViolation reports whether storage rejected a write because of a
// key, reference or check constraint.
func IsIntegrityViolation(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrForeignKey) || errors.Is(err, ErrCheck)
}

func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(err, op)
	case isUniqueViolation(err):
		return errors.Wrapf(ErrDuplicate, "%s: %v", op, err)
	case isForeignKeyViolation(err):
		return errors.Wrapf(ErrForeignKey, "%s: %v", op, err)
	case isCheckViolation(err):
		return errors.Wrapf(ErrCheck, "%s: %v", op, err)
	}
	return errors.Wrap(err, op)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "sqlstate 23503")
}

func isCheckViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "sqlstate 23514")
}
