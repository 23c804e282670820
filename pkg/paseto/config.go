package paseto

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg    Config
	cfgErr error
	once   sync.Once
)

type Config struct {
	Key string `env:"PASETO_KEY,required"` // PASERK string of the token key
}

// LoadConfig loads the token key configuration from the environment. The
// environment is read once per process; subsequent calls return the cached
// result, including a cached failure.
func LoadConfig() (Config, error) {
	configLoadFunc := func() (Config, error) {
		var cfg Config
		if err := env.Parse(&cfg); err != nil {
			return Config{}, err
		}
		if cfg.Key == "" {
			return Config{}, ErrMissingKey
		}
		return cfg, nil
	}

	once.Do(func() {
		cfg, cfgErr = configLoadFunc()
	})
	if cfgErr != nil {
		return Config{}, cfgErr
	}
	return cfg, nil
}

// GetKey parses the configured PASERK string into a ready-to-use Key.
func GetKey(cfg Config) (*Key, error) {
	if cfg.Key == "" {
		return nil, ErrMissingKey
	}
	return FromPaserk(cfg.Key)
}
