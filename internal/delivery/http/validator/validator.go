// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// echoValidator implements the echo.Validator interface.
type echoValidator struct {
	validate *playground.Validate
}

// New is the constructor for echoValidator.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on a bound request payload.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
