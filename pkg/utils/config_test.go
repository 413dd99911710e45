package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingEnvFileUsesDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "ADMIN_PASSWORD", "PORT", "APP_ENV", "DB_MAX_CONNS", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	config, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.False(t, config.Database.Configured())
	assert.Equal(t, DevAdminToken, config.Admin.Secret())
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9000\nADMIN_PASSWORD=from-file\nNOTIFY_TO=ops@safari.test\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("PORT", "")
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("DATABASE_URL", "postgres://localhost/safari")

	config, err := loadConfig(viper.New(), envFile)
	require.NoError(t, err)

	assert.Equal(t, "9000", config.App.Port)
	assert.Equal(t, "from-env", config.Admin.Secret())
	assert.Equal(t, "ops@safari.test", config.Notify.To)
	assert.True(t, config.Database.Configured())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "development without password",
			config: Config{App: AppConfig{Env: "development"}, Database: DatabaseConfig{MaxConns: 5}},
		},
		{
			name:    "production without password",
			config:  Config{App: AppConfig{Env: EnvProduction}, Database: DatabaseConfig{MaxConns: 5}},
			wantErr: "ADMIN_PASSWORD",
		},
		{
			name: "production with password",
			config: Config{
				App:      AppConfig{Env: EnvProduction},
				Database: DatabaseConfig{MaxConns: 5},
				Admin:    AdminConfig{Password: "s3cret"},
			},
		},
		{
			name:    "non-positive pool size",
			config:  Config{Database: DatabaseConfig{MaxConns: 0}},
			wantErr: "DB_MAX_CONNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
