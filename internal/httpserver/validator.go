package httpserver

import (
	"github.com/go-playground/validator/v10"
)

type requestValidator struct {
	v *validator.Validate
}

func newValidator() *requestValidator {
	return &requestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (rv *requestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}
