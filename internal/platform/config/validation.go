package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateStore, StoreConfig{})

	return v
}

// validateStore requires the connection settings of the selected driver only.
func validateStore(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(StoreConfig)
	if !ok {
		return
	}

	switch s.Driver {
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			sl.ReportError(s.Postgres.DSN, "Postgres.DSN", "DSN", "required_for_driver", s.Driver)
		}
	case DriverMongo:
		if s.Mongo.URI == "" {
			sl.ReportError(s.Mongo.URI, "Mongo.URI", "URI", "required_for_driver", s.Driver)
		}

		if s.Mongo.Database == "" {
			sl.ReportError(s.Mongo.Database, "Mongo.Database", "Database", "required_for_driver", s.Driver)
		}

		if s.Mongo.Collection == "" {
			sl.ReportError(s.Mongo.Collection, "Mongo.Collection", "Collection", "required_for_driver", s.Driver)
		}
	case DriverSQLite:
		if s.SQLite.Path == "" {
			sl.ReportError(s.SQLite.Path, "SQLite.Path", "Path", "required_for_driver", s.Driver)
		}
	}
}

// Validate validates the configuration. The service refuses to start on failure.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "required_for_driver":
		return fmt.Sprintf("%s is required for store driver %q", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath converts "Config.Store.Postgres.DSN" to "store.postgres.dsn".
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
