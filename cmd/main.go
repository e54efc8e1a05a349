package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ibiraza1077-pixel/job-tracker/config"
	"github.com/ibiraza1077-pixel/job-tracker/db"
	authhandler "github.com/ibiraza1077-pixel/job-tracker/internal/auth/handler"
	authrepo "github.com/ibiraza1077-pixel/job-tracker/internal/auth/repository/postgres"
	authservice "github.com/ibiraza1077-pixel/job-tracker/internal/auth/service"
	jobhandler "github.com/ibiraza1077-pixel/job-tracker/internal/job/handler"
	jobrepo "github.com/ibiraza1077-pixel/job-tracker/internal/job/repository/postgres"
	jobservice "github.com/ibiraza1077-pixel/job-tracker/internal/job/service"
	"github.com/ibiraza1077-pixel/job-tracker/internal/middleware"
)

func main() {
	cfg := config.Load()

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	defer pool.Close()

	accountRepo := authrepo.NewAccountRepository(pool)
	jobRepo := jobrepo.NewJobRepository(pool)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)
	accountService := authservice.NewAccountService(accountRepo, tokenService)
	jobService := jobservice.NewJobService(jobRepo)

	authHandler := authhandler.NewAuthHandler(accountService)
	jobHandler := jobhandler.NewJobHandler(jobService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Job Tracker API is running"})
	})

	authhandler.RegisterRoutes(app, authHandler)
	jobhandler.RegisterRoutes(app, jobHandler, middleware.RequireAuth(tokenService))

	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
