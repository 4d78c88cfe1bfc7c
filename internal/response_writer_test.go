package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteverify/internal"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("defaults to 200 before writing", func(t *testing.T) {
		t.Parallel()

		w := internal.NewResponseWriter(httptest.NewRecorder())

		assert.Equal(t, http.StatusOK, w.Status())
		assert.False(t, w.Written())
		assert.Zero(t, w.Size())
	})

	t.Run("tracks explicit status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := internal.NewResponseWriter(rec)
		w.WriteHeader(http.StatusAccepted)

		assert.Equal(t, http.StatusAccepted, w.Status())
		assert.True(t, w.Written())
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("ignores duplicate WriteHeader", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := internal.NewResponseWriter(rec)
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.Status())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("write implies 200 and accumulates size", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := internal.NewResponseWriter(rec)

		n, err := w.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)

		_, err = w.Write([]byte(" world"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Status())
		assert.True(t, w.Written())
		assert.Equal(t, int64(11), w.Size())
		assert.Equal(t, "hello world", rec.Body.String())
	})

	t.Run("unwrap returns the original writer", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := internal.NewResponseWriter(rec)

		assert.Same(t, http.ResponseWriter(rec), w.Unwrap())
	})
}
