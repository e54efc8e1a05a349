package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the job routes behind the auth gate.
func RegisterRoutes(app *fiber.App, h *JobHandler, requireAuth fiber.Handler) {
	jobs := app.Group("/jobs", requireAuth)
	jobs.Get("/", h.List)
	jobs.Post("/", h.Create)
	jobs.Get("/:id", h.Get)
	jobs.Put("/:id", h.Update)
	jobs.Delete("/:id", h.Delete)
}
