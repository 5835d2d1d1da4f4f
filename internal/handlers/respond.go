package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/owner"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/repository"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
}

// ownerScope binds the repository to the authenticated subject.
func ownerScope(c *fiber.Ctx, repo *repository.Repository) (*repository.Scoped, error) {
	subject, err := owner.GetSubject(c)
	if err != nil {
		return nil, err
	}
	return repo.For(subject), nil
}

// pathID parses a uuid path parameter.
func pathID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// storeError maps a repository error to a response. what names the record
// in the 404 message.
func storeError(c *fiber.Ctx, err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errorJSON(c, fiber.StatusNotFound, what+" not found")
	}
	return internalError(c, err)
}

// internalError logs err with request context, reports it to Sentry and
// answers with a generic 500.
func internalError(c *fiber.Ctx, err error) error {
	subject, _ := owner.GetSubject(c)
	slog.ErrorContext(c.UserContext(), "request failed",
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"owner_id", subject,
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetUser(sentry.User{ID: subject})
			hub.CaptureException(err)
		})
	}

	return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
}
