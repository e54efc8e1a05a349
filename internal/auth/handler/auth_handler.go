package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/dto"
	"github.com/ibiraza1077-pixel/job-tracker/internal/auth/service"
	autherror "github.com/ibiraza1077-pixel/job-tracker/internal/errors"
)

type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	account, token, err := h.accounts.Signup(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyRegistered) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewSignupResponse(account, token))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	account, token, err := h.accounts.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewLoginResponse(account, token))
}
