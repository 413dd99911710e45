package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// DevAdminToken is the admin secret used when ADMIN_PASSWORD is not configured.
// Config.Validate refuses it in production.
const DevAdminToken = "dev-token"

const EnvProduction = "production"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Notify   NotifyConfig
	Fallback FallbackConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
}

// Configured reports whether a connection string was supplied. Every
// database-or-fallback decision in the process derives from this.
func (c DatabaseConfig) Configured() bool {
	return c.URL != ""
}

type AdminConfig struct {
	Email    string
	Password string
}

// Secret returns the shared bearer token accepted on admin routes.
func (c AdminConfig) Secret() string {
	if c.Password == "" {
		return DevAdminToken
	}
	return c.Password
}

type NotifyConfig struct {
	ResendAPIKey string
	From         string
	To           string
}

type FallbackConfig struct {
	File string
}

func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// Validate rejects configurations that must not reach a running server.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD must be set when APP_ENV=production")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), ".env")
}

func loadConfig(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "safari-booking")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	// The .env file is optional; deployments configure through the environment.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Env:             v.GetString("APP_ENV"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Notify: NotifyConfig{
			ResendAPIKey: v.GetString("RESEND_API_KEY"),
			From:         v.GetString("NOTIFY_FROM"),
			To:           v.GetString("NOTIFY_TO"),
		},
		Fallback: FallbackConfig{
			File: v.GetString("FALLBACK_FILE"),
		},
	}

	return config, nil
}
