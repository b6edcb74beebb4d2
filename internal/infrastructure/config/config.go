package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token; the process refuses to start
	// without it. Rotation requires a restart; there is no live reload.
	JWTSecret   string        `env:"JWT_SECRET, required"`
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY, default=24h"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sellerhub"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required variables fail fast at startup.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
