package auth

import (
	"fmt"

	"chatboard/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest carries the fields checked before an account is created.
type RegisterRequest struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// ValidateRegister checks business rules before any expensive
// cryptographic operation runs.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		if req.Password == "" || len(req.Password) < 8 || len(req.Password) > 72 {
			return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
		}
		return err
	}
	return nil
}
