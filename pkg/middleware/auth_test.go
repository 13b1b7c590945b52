package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/akozyrev/basket-analytics-api/pkg/apiErrors"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "report-bot",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr.Code
}

func TestAuthMiddleware(t *testing.T) {
	var callerSeen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if caller, ok := r.Context().Value(ContextKeyCaller).(string); ok {
			callerSeen = caller
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(testSecret)(next)

	t.Run("valid token reaches the handler with the caller in context", func(t *testing.T) {
		callerSeen = ""

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "report-bot", callerSeen)
	})

	t.Run("healthcheck bypasses authentication", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, errorCode(t, rec))
	})

	t.Run("header without bearer prefix is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		req.Header.Set("Authorization", signedToken(t, testSecret, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, errorCode(t, rec))
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, time.Now().Add(-time.Hour)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, errorCode(t, rec))
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
	})
}
