package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/socialgraph/friendsdb/internal/config"
	"github.com/socialgraph/friendsdb/internal/database"
	"github.com/socialgraph/friendsdb/internal/handlers"
	"github.com/socialgraph/friendsdb/internal/middleware"
	"github.com/socialgraph/friendsdb/internal/types"
	"github.com/socialgraph/friendsdb/internal/utils"

	_ "github.com/socialgraph/friendsdb/docs/api" // Swagger docs
)

// @title FriendsDB API
// @version 1.0.0
// @description Social graph data service: users, friendships and hobbies over a relational store

// @contact.name API Support
// @contact.url https://github.com/socialgraph/friendsdb

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("friendsdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}
	app.Get("/health", healthHandler.GetHealth)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	userHandler := &handlers.UserHandler{DB: db}
	friendshipHandler := &handlers.FriendshipHandler{DB: db}
	hobbyHandler := &handlers.HobbyHandler{DB: db}
	graphHandler := &handlers.GraphHandler{DB: db}

	// User lifecycle
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users", userHandler.ListUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Patch("/users/:id", userHandler.UpdateUser)
	api.Delete("/users/:id", userHandler.DeleteUser)

	// Friendship edges
	api.Post("/friendships", friendshipHandler.LinkUsers)
	api.Delete("/friendships", friendshipHandler.UnlinkUsers)

	// Hobby attachment
	api.Post("/users/:id/hobbies", hobbyHandler.AttachHobbies)
	api.Delete("/users/:id/hobbies/:name", hobbyHandler.DetachHobby)

	// Graph projection
	api.Get("/graph", graphHandler.GetGraph)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Domain errors escaping a handler still map to their kind
	if kind := types.KindOf(err); kind != "" {
		return utils.DomainErrorResponse(c, err)
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
