package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"campus-booking/internal/config"
	"campus-booking/internal/handler"
	"campus-booking/internal/middleware"
	"campus-booking/internal/repository"
	"campus-booking/internal/service"
	"campus-booking/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

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
		log.Printf("Warning: Failed to connect to MinIO: %v (facility image upload will not work)", err)
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
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)

	facilities := api.Group("/facilities")
	facilities.Get("/", h.Facility.List)
	facilities.Get("/:id", h.Facility.Get)

	protected := api.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Patch("/profile", h.User.UpdateProfile)
	users.Patch("/password", h.User.ChangePassword)

	bookings := protected.Group("/bookings")
	bookings.Get("/my", h.Booking.ListMine)
	bookings.Post("/", h.Booking.Create)
	bookings.Patch("/:id", h.Booking.Update)
	bookings.Delete("/:id", h.Booking.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/read-all", h.Notification.MarkAllAsRead)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)

	admin := protected.Group("/admin", middleware.RequireRole("admin"))

	adminBookings := admin.Group("/bookings")
	adminBookings.Get("/", h.Booking.ListAll)
	adminBookings.Patch("/:id/approve", h.Booking.Approve)
	adminBookings.Patch("/:id/reject", h.Booking.Reject)

	adminFacilities := admin.Group("/facilities")
	adminFacilities.Get("/", h.Facility.List)
	adminFacilities.Post("/", h.Facility.Create)
	adminFacilities.Patch("/:id", h.Facility.Update)
	adminFacilities.Delete("/:id", h.Facility.Delete)
	adminFacilities.Post("/:id/image", h.Facility.UploadImage)

	adminUsers := admin.Group("/users")
	adminUsers.Get("/", h.User.List)
	adminUsers.Get("/:id", h.User.Get)
	adminUsers.Patch("/:id", h.User.AdminUpdate)
	adminUsers.Delete("/:id", h.User.Delete)

	admin.Get("/reports/stats", h.Report.GetStats)
	admin.Get("/audit", h.Audit.List)
}
