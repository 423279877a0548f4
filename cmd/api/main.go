package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"careshift/internal/config"
	"careshift/internal/handler"
	"careshift/internal/middleware"
	"careshift/internal/repository"
	"careshift/internal/service"
	"careshift/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (avatar upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/auth/me", h.Auth.Me)

	users := protected.Group("/users")
	users.Get("/", middleware.RequireAdmin(), h.User.List)
	users.Put("/me", h.User.UpdateProfile)
	users.Post("/me/photo", h.User.UploadPhoto)
	users.Get("/:userId", h.User.Get)
	users.Patch("/:userId/status", middleware.RequireAdmin(), h.User.UpdateStatus)

	institutions := protected.Group("/institutions")
	institutions.Post("/", middleware.RequireAdmin(), h.Institution.Create)
	institutions.Get("/", h.Institution.List)

	schedules := protected.Group("/schedules")
	schedules.Post("/", h.Schedule.Create)
	schedules.Get("/", h.Schedule.List)
	schedules.Patch("/:scheduleId", h.Schedule.Update)

	shifts := protected.Group("/shifts")
	shifts.Post("/", h.Shift.Create)
	shifts.Get("/", h.Shift.List)
	shifts.Get("/:shiftId", h.Shift.Get)
	shifts.Patch("/:shiftId/status", middleware.RequireAdmin(), h.Shift.SetStatus)

	exchanges := protected.Group("/exchanges")
	exchanges.Post("/", h.Exchange.Propose)
	exchanges.Get("/", h.Exchange.List)
	exchanges.Post("/:exchangeId/respond", h.Exchange.Respond)

	payslips := protected.Group("/payslips")
	payslips.Post("/generate", h.Payslip.Generate)
	payslips.Get("/", h.Payslip.List)
	payslips.Get("/:payslipId", h.Payslip.Get)

	messages := protected.Group("/messages")
	messages.Post("/", h.Message.Send)
	messages.Get("/", h.Message.List)
	messages.Patch("/:messageId/read", h.Message.MarkAsRead)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:notificationId/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.Stats)
}
