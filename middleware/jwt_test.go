package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studytrack/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/private", JWTMiddleware, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", c.Locals("userId"))
	})
	app.Get("/open", OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		_, authed := c.Locals("userId").(uint)
		if authed {
			return JsonResponse(c, fiber.StatusOK, true, "member", nil)
		}
		return JsonResponse(c, fiber.StatusOK, true, "guest", nil)
	})
	return app
}

func TestJWTMiddlewareRejectsMissingToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-key"}
	app := newAuthTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareAcceptsCookieToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-key"}
	app := newAuthTestApp()

	token, err := GenerateJWT(42, "Ann", "ann@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareAcceptsBearerToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-key"}
	app := newAuthTestApp()

	token, err := GenerateJWT(42, "Ann", "ann@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsForgedToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-key"}
	app := newAuthTestApp()

	token, err := GenerateJWT(42, "Ann", "ann@example.com")
	require.NoError(t, err)

	// Token signed under a different key must not verify
	config.AppConfig = &config.Config{JWTKey: "rotated-key"}

	req := httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalJWTMiddlewareContinuesAsGuest(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-key"}
	app := newAuthTestApp()

	// No token at all
	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A stale cookie is ignored, not rejected
	req := httptest.NewRequest("GET", "/open", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "not-a-token"})

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExtractTokenSniffsAuthPrefixedCookies(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-key"}
	app := newAuthTestApp()

	token, err := GenerateJWT(7, "Bo", "bo@example.com")
	require.NoError(t, err)

	// Older cookie names with the auth prefix still resolve a session
	req := httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(&http.Cookie{Name: "st-legacy-session", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
