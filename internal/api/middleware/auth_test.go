package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffAuth(t *testing.T) {
	var sawStaff bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		sawStaff = IsStaff(r.Context())
	})
	handler := StaffAuth("staff-secret")(next)

	t.Run("valid key passes", func(t *testing.T) {
		sawStaff = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(StaffKeyHeader, "staff-secret")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sawStaff)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		sawStaff = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, sawStaff)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(StaffKeyHeader, "guess")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	var gotID string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID, _ = GetRequestID(r.Context())
	})
	handler := RequestID(next)

	t.Run("generates id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.NotEmpty(t, gotID)
		assert.Equal(t, gotID, rec.Header().Get(RequestIDHeader))
	})

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-id-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, "client-id-1", gotID)
		assert.Equal(t, "client-id-1", rec.Header().Get(RequestIDHeader))
	})
}
