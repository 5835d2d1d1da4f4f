package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authRequired fiber.Handler,
	healthHandler *handlers.HealthHandler,
	routineHandler *handlers.RoutineHandler,
	exerciseHandler *handlers.ExerciseHandler,
	logHandler *handlers.LogHandler,
) {
	api := app.Group("/api")

	// Per-IP rate limit; zero or less turns it off
	if cfg.RateLimitPerMinute > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitPerMinute,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	// Health (public)
	api.Get("/health", healthHandler.Check)

	routines := api.Group("/routines", authRequired)
	routines.Post("/", routineHandler.Create)
	routines.Get("/", routineHandler.List)
	routines.Delete("/:id", routineHandler.Delete)

	exercises := api.Group("/exercises", authRequired)
	exercises.Post("/", exerciseHandler.Create)
	exercises.Put("/:routineId/reorder", exerciseHandler.Reorder)
	exercises.Get("/:routineId", exerciseHandler.List)
	exercises.Patch("/:id", exerciseHandler.Update)
	exercises.Delete("/:id", exerciseHandler.Delete)

	// Static segments must be registered before /:exerciseId
	logs := api.Group("/logs", authRequired)
	logs.Post("/", logHandler.Create)
	logs.Get("/", logHandler.List)
	logs.Get("/entry/:id", logHandler.Get)
	logs.Get("/progress/:exerciseId", logHandler.Progress)
	logs.Get("/:exerciseId", logHandler.ListForExercise)
	logs.Delete("/:id", logHandler.Delete)
}
