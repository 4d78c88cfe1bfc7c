package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	t.Parallel()

	newTestCtx := func(target string) (*requestContext, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		return newContext(rec, req, nil), rec
	}

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCtx("/?format=json&empty=")

		assert.Equal(t, "json", c.Query("format"))
		assert.Empty(t, c.Query("missing"))
		assert.Equal(t, "json", c.QueryDefault("format", "text"))
		assert.Equal(t, "text", c.QueryDefault("missing", "text"))
		assert.Equal(t, "text", c.QueryDefault("empty", "text"))
	})

	t.Run("host reflects the request host", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCtx("/")
		c.request.Host = "verify.example.com"

		assert.Equal(t, "verify.example.com", c.Host())
	})

	t.Run("header accessors", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestCtx("/")
		c.request.Header.Set("X-In", "inbound")
		c.SetHeader("X-Out", "outbound")

		assert.Equal(t, "inbound", c.Header("X-In"))
		assert.Equal(t, "outbound", rec.Header().Get("X-Out"))
	})

	t.Run("JSON response", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestCtx("/")
		require.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "active"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "active", body["status"])
	})

	t.Run("String response", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestCtx("/")
		require.NoError(t, c.String(http.StatusOK, "token-value"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "token-value", rec.Body.String())
		assert.True(t, c.Written())
	})

	t.Run("NoContent response", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestCtx("/")
		require.NoError(t, c.NoContent(http.StatusNoContent))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Set mirrors values into request context", func(t *testing.T) {
		t.Parallel()

		type key struct{}

		c, _ := newTestCtx("/")
		c.Set(key{}, "stored")

		assert.Equal(t, "stored", c.Get(key{}))
		assert.Equal(t, "stored", c.request.Context().Value(key{}))
		assert.Equal(t, "stored", c.Value(key{}))
	})

	t.Run("Written false before any write", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCtx("/")
		assert.False(t, c.Written())
	})
}
