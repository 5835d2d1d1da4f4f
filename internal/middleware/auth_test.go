package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/owner"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier map[string]string

func (f fakeVerifier) Verify(_ context.Context, token string) (string, error) {
	if sub, ok := f[token]; ok {
		return sub, nil
	}
	return "", identity.ErrUnauthenticated
}

func echoSubject(c *fiber.Ctx) error {
	sub, err := owner.GetSubject(c)
	if err != nil {
		return c.SendStatus(fiber.StatusTeapot)
	}
	return c.SendString(sub)
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthenticated(t *testing.T) {
	app := fiber.New()
	app.Get("/", Authenticated(fakeVerifier{"good": "alice-uid", "blank": ""}), echoSubject)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic Z29vZA==", fiber.StatusUnauthorized},
		{"empty token", "Bearer   ", fiber.StatusUnauthorized},
		{"rejected token", "Bearer nope", fiber.StatusUnauthorized},
		{"empty subject", "Bearer blank", fiber.StatusUnauthorized},
		{"valid", "Bearer good", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, app, tt.header)
			assert.Equal(t, tt.status, status)
			if tt.status == fiber.StatusOK {
				assert.Equal(t, "alice-uid", body)
			} else {
				assert.JSONEq(t, `{"error":true,"message":"Unauthorized"}`, body)
			}
		})
	}
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTProtected(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := fiber.New()
	app.Get("/", JWTProtected(cfg), echoSubject)

	exp := time.Now().Add(time.Hour).Unix()

	status, body := call(t, app, "Bearer "+signHS256(t, "test-secret", jwt.MapClaims{"sub": "bob-uid", "exp": exp}))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "bob-uid", body)

	status, _ = call(t, app, "Bearer "+signHS256(t, "other-secret", jwt.MapClaims{"sub": "bob-uid", "exp": exp}))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "Bearer "+signHS256(t, "test-secret", jwt.MapClaims{"sub": "bob-uid", "exp": time.Now().Add(-time.Hour).Unix()}))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "Bearer "+signHS256(t, "test-secret", jwt.MapClaims{"exp": exp}))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body = call(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":true,"message":"Unauthorized"}`, body)
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/", SecurityHeaders(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
