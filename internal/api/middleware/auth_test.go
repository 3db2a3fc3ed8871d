package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header passes user ID through context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard", nil)
		req.Header.Set("X-User-ID", "42")
		recorder := httptest.NewRecorder()

		Auth(next).ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard", nil)
		recorder := httptest.NewRecorder()

		Auth(next).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("non-numeric header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard", nil)
		req.Header.Set("X-User-ID", "abc")
		recorder := httptest.NewRecorder()

		Auth(next).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGetUserID_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req.Context())
	assert.False(t, ok)
}
