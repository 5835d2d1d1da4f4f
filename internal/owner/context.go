package owner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const subjectKey = "subject"

var ErrNoSubject = errors.New("no authenticated subject in context")

// SetSubject attaches the verified subject id to the request.
func SetSubject(c *fiber.Ctx, subject string) {
	c.Locals(subjectKey, subject)
}

// GetSubject returns the subject id set by the auth middleware.
func GetSubject(c *fiber.Ctx) (string, error) {
	subject, ok := c.Locals(subjectKey).(string)
	if !ok || subject == "" {
		return "", ErrNoSubject
	}
	return subject, nil
}
