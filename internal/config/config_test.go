package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_PASSWORD", "AUTH_MODE", "PORT",
		"RATE_LIMIT_PER_MINUTE", "DB_CONNECT_TIMEOUT", "LOG_RETENTION_DAYS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, AuthModeFirebase, cfg.AuthMode)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 30*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, 30, cfg.LogRetentionDays)
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 30*time.Second, cfg.DBConnectTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing db password",
			cfg:     Config{AuthMode: AuthModeJWT, JWTSecret: "s"},
			wantErr: "DB_PASSWORD",
		},
		{
			name:    "firebase without project",
			cfg:     Config{DBPassword: "p", AuthMode: AuthModeFirebase},
			wantErr: "FIREBASE_PROJECT_ID",
		},
		{
			name:    "jwt without secret",
			cfg:     Config{DBPassword: "p", AuthMode: AuthModeJWT},
			wantErr: "JWT_SECRET",
		},
		{
			name:    "unknown mode",
			cfg:     Config{DBPassword: "p", AuthMode: "basic"},
			wantErr: "AUTH_MODE",
		},
		{
			name: "firebase ok",
			cfg:  Config{DBPassword: "p", AuthMode: AuthModeFirebase, FirebaseProjectID: "workouts"},
		},
		{
			name: "jwt ok",
			cfg:  Config{DBPassword: "p", AuthMode: AuthModeJWT, JWTSecret: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "pw",
		DBName: "workouts", DBSSLMode: "require",
	}
	assert.Equal(t,
		"host=db user=u password=pw dbname=workouts port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}
