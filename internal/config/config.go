// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// New loads configuration from environment using viper with typed
// defaults and validation. A .env file, if present, seeds variables
// that are not already set in the process environment.
func New() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for key, value := range envMap {
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, value)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Pasanaku API")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.cors_origins", "http://localhost,http://localhost:3000")

	v.SetDefault("auth.secret_key", "change_me_in_production")
	v.SetDefault("auth.access_ttl", 30*time.Minute)
	v.SetDefault("auth.refresh_ttl", 7*24*time.Hour)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/pasanaku.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.db_name", "pasanaku")
	v.SetDefault("database.ssl_mode", "disable")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"app.name",
		"app.version",
		"logging.level",
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.shutdown_timeout",
		"server.cors_origins",
		"auth.secret_key",
		"auth.access_ttl",
		"auth.refresh_ttl",
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.db_name",
		"database.ssl_mode",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
