package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. Deliberately no default: the
	// process must not come up silently insecure.
	JWTSecret string `env:"JWT_SECRET, required"`

	MySQL  MySQLConfig
	Redis  RedisConfig
	Upload UploadConfig
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=portal:portal@tcp(localhost:3306)/portal?charset=utf8mb4&parseTime=True&loc=UTC"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir     string `env:"UPLOAD_DIR,      default=./uploads"`
	BaseURL string `env:"UPLOAD_BASE_URL, default=http://localhost:8080/files"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET surfaces here as an error and is fatal in main.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
