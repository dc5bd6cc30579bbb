package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := CSPNonce()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))

	nonce := c.Get(string(NonceKey)).(string)
	assert.NotEmpty(t, nonce)
	assert.Equal(t, nonce, GetNonce(c.Request().Context()))

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'nonce-"+nonce+"'")
	assert.Contains(t, csp, "img-src 'self' data: https:")
	assert.NotContains(t, csp, "unsafe-eval")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestGetNonce(t *testing.T) {
	ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
	assert.Equal(t, "test-nonce", GetNonce(ctx))
	assert.Equal(t, "", GetNonce(context.Background()))
}
