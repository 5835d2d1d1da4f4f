package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/owner"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// Every authentication failure gets this exact response.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// Authenticated verifies the bearer token with v and stores the subject on
// the request. Missing, malformed and rejected credentials all produce the
// same 401.
func Authenticated(v identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(c)
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			return unauthorized(c)
		}

		subject, err := v.Verify(c.UserContext(), token)
		if err != nil || subject == "" {
			return unauthorized(c)
		}

		owner.SetSubject(c, subject)
		return c.Next()
	}
}

// JWTProtected accepts HS256 tokens signed with cfg.JWTSecret and uses the
// sub claim as the subject.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c)
			}
			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				return unauthorized(c)
			}
			owner.SetSubject(c, sub)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}
