package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/auth/signup", h.Signup)
	app.Post("/auth/login", h.Login)
}
