package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError reports a required input that was not provided.
type ConfigError struct {
	Field string
}

func NewConfigError(field string) error {
	return &ConfigError{Field: field}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("option --%s is required", e.Field)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
