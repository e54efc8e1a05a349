package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/ibiraza1077-pixel/job-tracker/internal/errors"
	"github.com/ibiraza1077-pixel/job-tracker/internal/job/dto"
	"github.com/ibiraza1077-pixel/job-tracker/internal/job/service"
	"github.com/ibiraza1077-pixel/job-tracker/internal/middleware"
)

type JobHandler struct {
	jobs *service.JobService
}

func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return unauthenticated(c)
	}

	jobs, err := h.jobs.List(c.Context(), claims.AccountID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewJobList(jobs))
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return unauthenticated(c)
	}

	job, err := h.jobs.Get(c.Context(), c.Params("id"), claims.AccountID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewJobOutput(job))
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return unauthenticated(c)
	}

	var input dto.JobInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	job, err := h.jobs.Create(c.Context(), claims.AccountID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewJobOutput(job))
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return unauthenticated(c)
	}

	var input dto.JobInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	job, err := h.jobs.Update(c.Context(), c.Params("id"), claims.AccountID, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewJobOutput(job))
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return unauthenticated(c)
	}

	if err := h.jobs.Delete(c.Context(), c.Params("id"), claims.AccountID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Job deleted successfully",
	})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": autherror.ErrMissingToken.Error(),
	})
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case autherror.IsValidationError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
