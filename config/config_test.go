package config_test

import (
	"testing"

	"github.com/Winderton/cuehttp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Distinct types per test: the loader caches by concrete type, so sharing one
// struct across tests would leak state between them.

func TestLoad(t *testing.T) {
	t.Run("parses_environment", func(t *testing.T) {
		type serverEnv struct {
			Host string `env:"TEST_CONFIG_HOST" envDefault:"localhost"`
			Port int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
		}

		t.Setenv("TEST_CONFIG_HOST", "example.com")

		var cfg serverEnv
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("applies_defaults", func(t *testing.T) {
		type defaultsEnv struct {
			Level string `env:"TEST_CONFIG_LEVEL" envDefault:"info"`
		}

		var cfg defaultsEnv
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "info", cfg.Level)
	})

	t.Run("caches_per_type", func(t *testing.T) {
		type cachedEnv struct {
			Value string `env:"TEST_CONFIG_CACHED" envDefault:"first"`
		}

		var first cachedEnv
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// A changed environment must not affect an already loaded type.
		t.Setenv("TEST_CONFIG_CACHED", "second")

		var second cachedEnv
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("required_variable_missing", func(t *testing.T) {
		type requiredEnv struct {
			Secret string `env:"TEST_CONFIG_REQUIRED,required"`
		}

		var cfg requiredEnv
		err := config.Load(&cfg)
		assert.Error(t, err)
	})

	t.Run("nil_destination", func(t *testing.T) {
		var cfg *struct{}
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics_on_failure", func(t *testing.T) {
		type mustEnv struct {
			Token string `env:"TEST_CONFIG_MUST_TOKEN,required"`
		}

		var cfg mustEnv
		assert.Panics(t, func() {
			config.MustLoad(&cfg)
		})
	})

	t.Run("passes_through_on_success", func(t *testing.T) {
		type mustOKEnv struct {
			Name string `env:"TEST_CONFIG_MUST_NAME" envDefault:"cuehttp"`
		}

		var cfg mustOKEnv
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "cuehttp", cfg.Name)
	})
}
