package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/careergist/careergist/career/activity/activityapi"
	"github.com/careergist/careergist/career/analytics/analyticsapi"
	"github.com/careergist/careergist/career/interview/interviewapi"
	"github.com/careergist/careergist/career/learning/learningapi"
	"github.com/careergist/careergist/career/resume/resumeapi"
	"github.com/careergist/careergist/career/suggestion/suggestionapi"
	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/logx"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting CareerGist API Server...")

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "CareerGist API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes

	// Auth: /api/v1/auth/*
	container.AuthHandlers.RegisterRoutes(app, container.AuthMiddleware)

	// Resumes: /api/v1/resumes
	resumeapi.RegisterRoutes(app, container.ResumeHandlers, container.AuthMiddleware)

	// Career suggestions: /api/v1/career-suggestions
	suggestionapi.RegisterRoutes(app, container.SuggestionHandlers, container.AuthMiddleware)

	// Favorites, searches and dashboard: /api/v1/*
	activityapi.RegisterRoutes(app, container.ActivityHandlers, container.AuthMiddleware)

	// Salary analytics: /api/v1/analytics/*
	analyticsapi.RegisterRoutes(app, container.AnalyticsHandlers, container.AuthMiddleware)

	// Interview questions: /api/v1/interview/*
	interviewapi.RegisterRoutes(app, container.InterviewHandlers, container.AuthMiddleware)

	// Learning resources: /api/v1/learning-resources
	learningapi.RegisterRoutes(app, container.LearningHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Run server in a goroutine
	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
