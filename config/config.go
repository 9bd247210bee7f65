// Package config provides type-safe environment variable loading with
// per-type caching. A .env file in the working directory is loaded once
// before the first parse; parsing itself is handled by caarlos0/env.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load receives a nil destination.
var ErrNilConfig = errors.New("config: destination cannot be nil")

var (
	cache   sync.Map // reflect.Type -> parsed value
	envOnce sync.Once
)

// Load parses environment variables into cfg. Each concrete type is parsed
// once per process; later calls for the same type receive the cached value,
// so two loads of the same type always agree.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	envOnce.Do(func() {
		// Missing .env files are not an error; the environment may be
		// configured externally.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load panicking on failure, useful during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
