package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the configuration using struct tags plus the presence
// rule for the two required positional values. The bind address and root
// are never checked for well-formedness, only for presence.
func Validate(cfg *Config) error {
	if cfg.Server.BindAddress == "" || cfg.Server.Root == "" {
		return fmt.Errorf("not enough arguments: a bind address and a filesystem root are required")
	}

	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
