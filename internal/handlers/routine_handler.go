package handlers

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type RoutineHandler struct {
	repo *repository.Repository
}

func NewRoutineHandler(repo *repository.Repository) *RoutineHandler {
	return &RoutineHandler{repo: repo}
}

func (h *RoutineHandler) Create(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	routine, err := s.CreateRoutine(c.UserContext(), req.Name)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(routine)
}

func (h *RoutineHandler) List(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	routines, err := s.ListRoutines(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(routines)
}

// Delete removes the routine together with its exercises and their logs.
func (h *RoutineHandler) Delete(c *fiber.Ctx) error {
	s, err := ownerScope(c, h.repo)
	if err != nil {
		return unauthorized(c)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid routine ID")
	}

	if err := s.DeleteRoutine(c.UserContext(), id); err != nil {
		return storeError(c, err, "Routine")
	}
	return c.JSON(dto.MessageResponse{Message: "Routine deleted"})
}
