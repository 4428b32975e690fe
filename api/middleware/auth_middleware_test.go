package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgauth "github.com/printventory/printventory-backend/pkg/auth"
	"github.com/printventory/printventory-backend/pkg/config"
)

func identifyTestJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "printventory-test",
		ExpirationMinutes: 15,
	}
}

type capturedIdentity struct {
	userID   int64
	username string
	role     string
}

func identityCapture(captured *capturedIdentity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.userID = UserIDFromContext(r.Context())
		captured.username = UsernameFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestIdentifyServesAnonymousRequests(t *testing.T) {
	var captured capturedIdentity
	handler := Identify(identifyTestJWTConfig(), nil)(identityCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), captured.userID)
	assert.Empty(t, captured.username)
}

func TestIdentifyIgnoresInvalidToken(t *testing.T) {
	var captured capturedIdentity
	handler := Identify(identifyTestJWTConfig(), nil)(identityCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), captured.userID)
}

func TestIdentifySeedsClaimsFromValidToken(t *testing.T) {
	cfg := identifyTestJWTConfig()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID:   42,
		Username: "admin",
		Role:     "Admin",
	})
	require.NoError(t, err)

	var captured capturedIdentity
	handler := Identify(cfg, nil)(identityCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.userID)
	assert.Equal(t, "admin", captured.username)
	assert.Equal(t, "Admin", captured.role)
}
