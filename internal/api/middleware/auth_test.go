package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stableflow/reserve-engine/internal/api/middleware"
	"github.com/stableflow/reserve-engine/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

// testKeyPair generates an RSA key pair and returns the private key plus
// the PEM-encoded public key
func testKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	return key, string(pubPEM)
}

func signedToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticateAPIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"secret-key"}}

	result := middleware.Authenticate("APIKey secret-key", cfg)
	assert.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)

	result = middleware.Authenticate("APIKey wrong-key", cfg)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)

	result = middleware.Authenticate("APIKey secret-key", middleware.AuthConfig{})
	assert.False(t, result.Success)
}

func TestAuthenticateJWT(t *testing.T) {
	key, pubPEM := testKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: pubPEM}

	token := signedToken(t, key, jwt.RegisteredClaims{
		Subject:   "keeper-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "keeper-1", result.AuthSubject)

	// expired token
	expired := signedToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	result = middleware.Authenticate("Bearer "+expired, cfg)
	assert.False(t, result.Success)

	// token signed by a different key
	otherKey, _ := testKeyPair(t)
	forged := signedToken(t, otherKey, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	result = middleware.Authenticate("Bearer "+forged, cfg)
	assert.False(t, result.Success)
}

func TestAuthenticateMalformedHeaders(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"k"}}

	assert.False(t, middleware.Authenticate("", cfg).Success)
	assert.False(t, middleware.Authenticate("Bearer", cfg).Success)
	assert.False(t, middleware.Authenticate("Basic dXNlcjpwYXNz", cfg).Success)
}

func TestAuthMiddleware(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"secret-key"}}

	router := gin.New()
	router.GET("/guarded", middleware.Auth(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// no credentials
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid api key
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "APIKey secret-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthRejectsJWT(t *testing.T) {
	key, pubPEM := testKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: pubPEM, APIKeys: []string{"secret-key"}}

	router := gin.New()
	router.POST("/apikey-only", middleware.APIKeyAuth(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// a valid JWT is still refused here
	token := signedToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/apikey-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/apikey-only", nil)
	req.Header.Set("Authorization", "APIKey secret-key")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
