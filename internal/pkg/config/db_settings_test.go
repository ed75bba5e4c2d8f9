//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				DBName: "yates",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings without name",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
				DSN:  ":memory:",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:    "user=postgres",
				DBName: "yates",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type:   "mysql",
				DSN:    "user:password@tcp(localhost:3306)/dbname",
				DBName: "yates",
			},
			expectedError: true,
		},
		{
			name: "postgres missing DSN",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DBName: "yates",
			},
			expectedError: true,
		},
		{
			name: "postgres with pool limits",
			settings: &DatabaseSettings{
				Type:            PostgresDbType,
				DSN:             "user=postgres",
				DBName:          "yates",
				MaxOpenConns:    20,
				MaxIdleConns:    5,
				ConnMaxLifetime: 30 * time.Minute,
			},
			expectedError: false,
		},
		{
			name: "negative pool size",
			settings: &DatabaseSettings{
				Type:         SqliteDbType,
				MaxOpenConns: -1,
			},
			expectedError: true,
		},
		{
			name: "postgres missing name",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
