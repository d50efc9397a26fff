// Package validator wraps go-playground/validator with a shared instance,
// the custom tags used by the relay's configuration, and uniform error
// formatting.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate
// when at least one field rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Networks accepted by the "chainnet" tag.
var chainNetworks = map[string]struct{}{
	"mainnet":  {},
	"testnet3": {},
	"regtest":  {},
	"signet":   {},
}

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("chainnet", isChainNetwork); err != nil {
		panic(err)
	}
}

func isChainNetwork(fl gvalidator.FieldLevel) bool {
	_, ok := chainNetworks[fl.Field().String()]
	return ok
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
// Besides the stock rules it understands "chainnet", which accepts one of
// mainnet, testnet3, regtest or signet.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
