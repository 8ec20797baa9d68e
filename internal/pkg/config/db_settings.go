package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SqliteDbType selects the embedded SQLite driver
const SqliteDbType = "sqlite"

// PostgresDbType selects the PostgreSQL driver
const PostgresDbType = "postgres"

// DatabaseSettings holds the connection settings of the key metadata catalogue
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `yaml:"dsn" validate:"required"`
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}

	return nil
}
