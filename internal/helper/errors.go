package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

func asValidationErrors(err error) (validator.ValidationErrors, bool) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
