package repository

import (
	"github.com/todowy/todowy-api/internal/models"
)

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// Create creates a todo and its assignment rows atomically
	Create(todo *models.Todo, assigneeIDs []string) error

	// FindByID finds a todo by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Todo, error)

	// List retrieves todos with filtering and pagination
	List(filter TodoFilter) ([]models.Todo, int64, error)

	// Update updates a todo
	Update(todo *models.Todo) error

	// ReplaceAssignees swaps the todo's assignment set for the given user IDs
	ReplaceAssignees(todoID string, userIDs []string) error

	// Delete removes a todo and its assignment rows
	Delete(id string) error
}

// TodoFilter holds filtering options for listing todos
type TodoFilter struct {
	Status   *models.TodoStatus
	Priority *models.Priority
	Search   string
	Page     int
	PageSize int
}

// UserWithCount is a user annotated with the number of todos assigned to them
type UserWithCount struct {
	models.User
	AssignedCount int64 `json:"-"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// List retrieves users with their assigned-todo counts
	List(filter UserFilter) ([]UserWithCount, int64, error)

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []string) (int64, error)
}

// UserFilter holds filtering options for listing users
type UserFilter struct {
	Search   string
	Page     int
	PageSize int
}
