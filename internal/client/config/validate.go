package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var val = validator.New(validator.WithRequiredStructEnabled())

// Human-readable messages for the validator tags this package uses.
var validationMessages = map[string]string{
	"required":    "is required",
	"url":         "must be a valid URL",
	"oneof":       "must be one of: %s",
	"required_if": "is required in this upload mode",
}

// Validate checks the loaded Config and returns a single aggregated error
// listing every failed field, or nil.
func Validate(cfg *Config) error {
	err := val.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msg, ok := validationMessages[e.Tag()]
		if !ok {
			msg = "is invalid"
		}
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, e.Param())
		}
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Field(), msg))
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
