package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteverify/internal"
	"github.com/dmitrymomot/siteverify/middlewares"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	okHandler := func(c internal.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("default configuration allows all origins", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		handler := middlewares.CORS()(okHandler)

		require.NoError(t, handler(ctx))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no CORS headers when Origin header is missing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		handler := middlewares.CORS()(okHandler)

		require.NoError(t, handler(ctx))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("specific origins list", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowOrigins("http://allowed.com"),
		)

		t.Run("allows listed origin", func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "http://allowed.com")
			rec := httptest.NewRecorder()
			ctx := newTestContext(rec, req)

			require.NoError(t, mw(okHandler)(ctx))
			assert.Equal(t, "http://allowed.com", rec.Header().Get("Access-Control-Allow-Origin"))
		})

		t.Run("blocks unlisted origin", func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", "http://blocked.com")
			rec := httptest.NewRecorder()
			ctx := newTestContext(rec, req)

			require.NoError(t, mw(okHandler)(ctx))
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	})

	t.Run("apply to all responses sets headers without Origin", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowMethods(http.MethodGet, http.MethodPost, http.MethodOptions),
			middlewares.WithAllowHeaders("Content-Type"),
			middlewares.WithApplyToAllResponses(),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, mw(okHandler)(ctx))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("preflight uses configured status with empty body", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithApplyToAllResponses(),
			middlewares.WithPreflightStatus(http.StatusOK),
		)

		var reached bool
		next := func(c internal.Context) error {
			reached = true
			return nil
		}

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, mw(next)(ctx))
		assert.False(t, reached, "preflight should short-circuit the chain")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("preflight defaults to 204", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, middlewares.CORS()(okHandler)(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("AllowOriginFunc overrides AllowOrigins", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowOrigins("http://static.com"),
			middlewares.WithAllowOriginFunc(func(origin string) bool {
				return origin == "http://dynamic.com"
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://static.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, mw(okHandler)(ctx))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Vary Origin is set for allowed requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		require.NoError(t, middlewares.CORS()(okHandler)(ctx))
		assert.Contains(t, rec.Header().Values("Vary"), "Origin")
	})
}
