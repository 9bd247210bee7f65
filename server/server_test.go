package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("applies_defaults", func(t *testing.T) {
		t.Parallel()

		s := New(":8080")

		assert.Equal(t, ":8080", s.Addr())
		assert.Equal(t, DefaultReadTimeout, s.readTimeout)
		assert.Equal(t, DefaultWriteTimeout, s.writeTimeout)
		assert.Equal(t, DefaultIdleTimeout, s.idleTimeout)
		assert.Equal(t, DefaultShutdownTimeout, s.shutdown)
		assert.Equal(t, DefaultMaxHeaderBytes, s.maxHeaderBytes)
		assert.NotNil(t, s.logger)
	})

	t.Run("applies_options", func(t *testing.T) {
		t.Parallel()

		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS13}
		s := New(":9090",
			WithReadTimeout(time.Second),
			WithWriteTimeout(2*time.Second),
			WithIdleTimeout(3*time.Second),
			WithShutdownTimeout(4*time.Second),
			WithMaxHeaderBytes(2048),
			WithTLS(tlsConfig),
		)

		assert.Equal(t, time.Second, s.readTimeout)
		assert.Equal(t, 2*time.Second, s.writeTimeout)
		assert.Equal(t, 3*time.Second, s.idleTimeout)
		assert.Equal(t, 4*time.Second, s.shutdown)
		assert.Equal(t, 2048, s.maxHeaderBytes)
		assert.Same(t, tlsConfig, s.tlsConfig)
	})

	t.Run("nil_logger_option_keeps_default", func(t *testing.T) {
		t.Parallel()

		s := New(":8080", WithLogger(nil))
		assert.NotNil(t, s.logger)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing_address", func(t *testing.T) {
		t.Parallel()

		_, err := NewFromConfig(Config{})
		assert.ErrorIs(t, err, ErrMissingAddress)
	})

	t.Run("applies_config_values", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.ReadTimeout = 5 * time.Second

		s, err := NewFromConfig(cfg)
		require.NoError(t, err)

		assert.Equal(t, ":8080", s.Addr())
		assert.Equal(t, 5*time.Second, s.readTimeout)
	})

	t.Run("options_override_config", func(t *testing.T) {
		t.Parallel()

		s, err := NewFromConfig(DefaultConfig(), WithReadTimeout(time.Second))
		require.NoError(t, err)

		assert.Equal(t, time.Second, s.readTimeout)
	})

	t.Run("unreadable_tls_files", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.TLSCertFile = "/nonexistent/cert.pem"
		cfg.TLSKeyFile = "/nonexistent/key.pem"

		_, err := NewFromConfig(cfg)
		assert.Error(t, err)
	})
}

func TestServerLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("start_returns_on_context_cancel", func(t *testing.T) {
		t.Parallel()

		s := New("localhost:0")
		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx, http.NewServeMux())
		}()

		cancel()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("Start did not return after context cancellation")
		}

		_ = s.Stop()
	})

	t.Run("stop_without_start_is_noop", func(t *testing.T) {
		t.Parallel()

		s := New(":8080")
		assert.NoError(t, s.Stop())
	})
}
