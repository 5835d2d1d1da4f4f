package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LogHandler struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewLogHandler(repo *repository.Repository) *LogHandler {
	return &LogHandler{repo: repo, now: time.Now}
}

func (h *LogHandler) Create(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateLogRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	date, err := req.ParsedDate(h.now())
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "date: must be a valid date")
	}

	exerciseID, _ := uuid.Parse(req.ExerciseID)
	log, err := s.CreateLog(c.UserContext(), repository.NewLog{
		ExerciseID: exerciseID,
		Weight:     *req.Weight,
		Reps:       *req.Reps,
		Date:       date,
		Notes:      req.Notes,
	})
	if err != nil {
		return storeError(c, err, "Exercise")
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

func (h *LogHandler) List(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	logs, err := s.ListLogs(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(logs)
}

func (h *LogHandler) ListForExercise(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	exerciseID, err := pathID(c, "exerciseId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid exercise ID")
	}

	logs, err := s.ListLogsForExercise(c.UserContext(), exerciseID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(logs)
}

func (h *LogHandler) Get(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid log ID")
	}

	log, err := s.GetLog(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, "Log")
	}
	return c.JSON(log)
}

// Progress returns the exercise's weight and reps over time.
func (h *LogHandler) Progress(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	exerciseID, err := pathID(c, "exerciseId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid exercise ID")
	}

	points, err := s.Progress(c.UserContext(), exerciseID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(points)
}

func (h *LogHandler) Delete(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid log ID")
	}

	if err := s.DeleteLog(c.UserContext(), id); err != nil {
		return storeError(c, err, "Log")
	}
	return c.JSON(dto.MessageResponse{Message: "Log deleted"})
}
