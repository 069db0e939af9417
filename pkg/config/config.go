package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimeout bounds a single remote call.
const DefaultTimeout = 30 * time.Second

// Lookup resolves an environment variable. os.Getenv is used when nil.
type Lookup func(string) string

// Common holds settings shared by every command.
type Common struct {
	EnvFile string
	Verbose bool
	Timeout time.Duration
}

// DefaultCommon returns a baseline configuration without side effects.
func DefaultCommon() Common {
	return Common{
		Verbose: false,
		Timeout: DefaultTimeout,
	}
}

// Normalize sanitizes common values and applies defaults.
func Normalize(cfg Common) Common {
	cfg.EnvFile = strings.TrimSpace(cfg.EnvFile)
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}
	return cfg
}

// LoadEnv loads variables from a .env file. An absent default .env is ignored,
// an explicit path that cannot be loaded is an error.
func LoadEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func (l Lookup) get(name string) string {
	if l == nil {
		return strings.TrimSpace(os.Getenv(name))
	}
	return strings.TrimSpace(l(name))
}

func (l Lookup) getOr(name, fallback string) string {
	if v := l.get(name); v != "" {
		return v
	}
	return fallback
}

// Require reads every named variable and reports all missing ones at once.
func Require(lookup Lookup, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	var missing []string
	for _, name := range names {
		v := lookup.get(name)
		if v == "" {
			missing = append(missing, name)
			continue
		}
		values[name] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	return values, nil
}
