package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/todowy/todowy-api/internal/config"
	"github.com/todowy/todowy-api/internal/database"
	"github.com/todowy/todowy-api/internal/handlers"
	"github.com/todowy/todowy-api/internal/middleware"
	"github.com/todowy/todowy-api/internal/repository"
	"github.com/todowy/todowy-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	todoRepo := repository.NewTodoRepository(database.GetDB())
	userRepo := repository.NewUserRepository(database.GetDB())
	todoService := services.NewTodoService(todoRepo, userRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	todoHandler := handlers.NewTodoHandler(todoService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todowy API is running",
		})
	})

	// Todo routes
	todos := r.Group("/todos")
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("/:id", middleware.RequireTodo(), todoHandler.GetTodo)
		todos.PUT("/:id", middleware.RequireTodo(), todoHandler.UpdateTodo)
		todos.DELETE("/:id", middleware.RequireTodo(), todoHandler.DeleteTodo)
	}

	// User routes
	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
