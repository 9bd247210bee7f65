package cuehttp_test

import (
	"net/http"
	"testing"

	"github.com/Winderton/cuehttp"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Redirect(t *testing.T) {
	t.Parallel()

	t.Run("defaults_to_moved_permanently", func(t *testing.T) {
		t.Parallel()

		router := cuehttp.New()
		router.Redirect("/old", "/new")

		ctx := newTestContext(http.MethodGet, "/old")
		router.Routes()(ctx)

		assert.Equal(t, http.StatusMovedPermanently, ctx.Status())
		assert.Equal(t, "/new", ctx.location)
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		router := cuehttp.New()
		router.RedirectWithStatus("/old", "/new", http.StatusFound)

		ctx := newTestContext(http.MethodGet, "/old")
		router.Routes()(ctx)

		assert.Equal(t, http.StatusFound, ctx.Status())
		assert.Equal(t, "/new", ctx.location)
	})

	t.Run("covers_every_verb", func(t *testing.T) {
		t.Parallel()

		router := cuehttp.New()
		router.Redirect("/old", "/new")
		dispatch := router.Routes()

		for _, verb := range []string{
			http.MethodDelete,
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
		} {
			ctx := newTestContext(verb, "/old")
			dispatch(ctx)
			assert.Equal(t, http.StatusMovedPermanently, ctx.Status(), "verb %s", verb)
			assert.Equal(t, "/new", ctx.location, "verb %s", verb)
		}
	})

	t.Run("chains_with_other_registrations", func(t *testing.T) {
		t.Parallel()

		router := cuehttp.New().
			Redirect("/old", "/new").
			Get("/current", func(ctx cuehttp.Context, next cuehttp.Next) {
				ctx.SetStatus(http.StatusOK)
			})
		dispatch := router.Routes()

		ctx := newTestContext(http.MethodGet, "/current")
		dispatch(ctx)
		assert.Equal(t, http.StatusOK, ctx.Status())
	})
}
