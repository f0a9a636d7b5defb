package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/raulk/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newMockClock() *clock.Mock {
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))
	return clk
}

func runMiddleware(t *testing.T, config JWTConfig, header string) (*httptest.ResponseRecorder, *AuthAdmin) {
	t.Helper()
	e := echo.New()
	var seen *AuthAdmin
	handler := JWTMiddleware(config)(func(c echo.Context) error {
		seen, _ = GetAdminFromContext(c)
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/bank/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec, seen
}

func TestJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	clk := newMockClock()
	token, err := NewTokenIssuer(testSecret, time.Hour, clk).Issue(7, "ops@example.com", "admin")
	require.NoError(t, err)

	rec, admin := runMiddleware(t, JWTConfig{Secret: testSecret, Logger: zap.NewNop(), Clock: clk}, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, admin)
	assert.Equal(t, uint(7), admin.AdminID)
	assert.Equal(t, "ops@example.com", admin.Email)
	assert.Equal(t, "admin", admin.Role)
}

func TestJWTMiddleware_Rejections(t *testing.T) {
	clk := newMockClock()
	issuer := NewTokenIssuer(testSecret, time.Hour, clk)
	valid, err := issuer.Issue(7, "ops@example.com", "admin")
	require.NoError(t, err)

	foreign, err := NewTokenIssuer("other-secret", time.Hour, clk).Issue(7, "ops@example.com", "admin")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "MISSING_AUTH_HEADER"},
		{"not bearer", "Token " + valid, "INVALID_AUTH_FORMAT"},
		{"wrong secret", "Bearer " + foreign, "INVALID_TOKEN"},
		{"garbage", "Bearer not-a-jwt", "INVALID_TOKEN"},
		{"no subject", "Bearer " + noSubject, "INVALID_CLAIMS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, admin := runMiddleware(t, JWTConfig{Secret: testSecret, Logger: zap.NewNop(), Clock: clk}, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
			assert.Nil(t, admin)
		})
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	clk := newMockClock()
	token, err := NewTokenIssuer(testSecret, time.Hour, clk).Issue(7, "ops@example.com", "admin")
	require.NoError(t, err)

	clk.Add(2 * time.Hour)
	rec, _ := runMiddleware(t, JWTConfig{Secret: testSecret, Logger: zap.NewNop(), Clock: clk}, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_Skips(t *testing.T) {
	t.Run("skip path", func(t *testing.T) {
		rec, _ := runMiddleware(t, JWTConfig{Secret: testSecret, Logger: zap.NewNop(), SkipPaths: []string{"/bank"}}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("skipper", func(t *testing.T) {
		config := JWTConfig{
			Secret:  testSecret,
			Logger:  zap.NewNop(),
			Skipper: func(echo.Context) bool { return true },
		}
		rec, _ := runMiddleware(t, config, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
