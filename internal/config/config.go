package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr      string        `env:"ADDR" envDefault:":8080"`
	DBDriver  string        `env:"DB_DRIVER" envDefault:"sqlite3"`
	DBDSN     string        `env:"DB_DSN" envDefault:"chatline.db"`
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
