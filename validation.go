package sdk

import (
	stdErrors "errors"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"

	sdkerrors "github.com/pauloappbr/gojinn-sdk/domain/errors"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// DecodeBody decodes the JSON request body into target and validates it
// against its `validate` struct tags. Failures are returned as *errors.ConfigError.
func DecodeBody(req *Request, target any) error {
	if err := json.Unmarshal([]byte(req.Body), target); err != nil {
		return &sdkerrors.ConfigError{Err: err}
	}

	if err := validate.Struct(target); err != nil {
		var invalid *validator.InvalidValidationError
		if stdErrors.As(err, &invalid) {
			// Target is not a struct; nothing to validate.
			return nil
		}
		var fieldErrs validator.ValidationErrors
		if stdErrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &sdkerrors.ConfigError{Field: fieldErrs[0].Field(), Err: err}
		}
		return &sdkerrors.ConfigError{Err: err}
	}

	return nil
}
