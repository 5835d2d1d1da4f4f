package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExerciseHandler struct {
	repo *repository.Repository
}

func NewExerciseHandler(repo *repository.Repository) *ExerciseHandler {
	return &ExerciseHandler{repo: repo}
}

func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	routineID, _ := uuid.Parse(req.RoutineID)
	exercise, err := s.CreateExercise(c.UserContext(), routineID, req.Name, *req.TotalSets)
	if err != nil {
		return storeError(c, err, "Routine")
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}

// List returns the routine's exercises in display order.
func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	routineID, err := pathID(c, "routineId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid routine ID")
	}

	exercises, err := s.ListExercises(c.UserContext(), routineID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(exercises)
}

func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid exercise ID")
	}

	var req dto.UpdateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	exercise, err := s.UpdateExercise(c.UserContext(), id, repository.ExerciseChanges{
		Name:      req.Name,
		TotalSets: req.TotalSets,
	})
	if err != nil {
		return storeError(c, err, "Exercise")
	}
	return c.JSON(exercise)
}

// Delete removes the exercise and its logs.
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid exercise ID")
	}

	if err := s.DeleteExercise(c.UserContext(), id); err != nil {
		return storeError(c, err, "Exercise")
	}
	return c.JSON(dto.MessageResponse{Message: "Exercise deleted"})
}

// Reorder applies new positions to the routine's exercises. Pairs naming
// an exercise outside the routine or owned by someone else are ignored.
func (h *ExerciseHandler) Reorder(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	routineID, err := pathID(c, "routineId")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid routine ID")
	}

	var req dto.ReorderExercisesRequest
	if err := c.BodyParser(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "exercises" {
			return errorJSON(c, fiber.StatusBadRequest, "exercises must be an array")
		}
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Exercises == nil {
		return errorJSON(c, fiber.StatusBadRequest, "exercises must be an array")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := s.ReorderExercises(c.UserContext(), routineID, req.Exercises)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ReorderResponse{Message: "Exercises reordered", Updated: updated})
}
