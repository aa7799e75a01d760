package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrTaskNameRequired = errors.New("taskName is required")
	ErrTaskNameEmpty    = errors.New("taskName cannot be empty")
	ErrInvalidAssignee  = errors.New("one or more assignee IDs do not reference an existing user")
)

// todoPreloads are the relations resolved on every single-todo response
var todoPreloads = []string{"Assignees", "Assignees.User"}

// TodoService handles todo business logic
type TodoService struct {
	todoRepo repository.TodoRepository
	userRepo repository.UserRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository, userRepo repository.UserRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		userRepo: userRepo,
	}
}

// ListTodosInput represents filters for listing todos
type ListTodosInput struct {
	Status   *models.TodoStatus
	Priority *models.Priority
	Search   string
	Page     int
	PageSize int
}

// CreateTodoInput represents input for creating a todo
type CreateTodoInput struct {
	TaskName    string
	Status      models.TodoStatus
	Priority    models.Priority
	Dates       time.Time
	Description string
	AssigneeIDs []string
}

// UpdateTodoInput represents input for partially updating a todo.
// Nil fields are left unchanged. A non-nil AssigneeIDs, empty included,
// replaces the whole assignment set.
type UpdateTodoInput struct {
	TaskName    *string
	Status      *models.TodoStatus
	Priority    *models.Priority
	Dates       *time.Time
	Description *string
	AssigneeIDs *[]string
}

// ListTodos returns a filtered page of todos and the total match count
func (s *TodoService) ListTodos(input ListTodosInput) ([]models.Todo, int64, error) {
	filter := repository.TodoFilter{
		Status:   input.Status,
		Priority: input.Priority,
		Search:   input.Search,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	todos, total, err := s.todoRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, total, nil
}

// GetTodo returns a todo with its assignees resolved
func (s *TodoService) GetTodo(todoID string) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(todoID, todoPreloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	return todo, nil
}

// CreateTodo creates a todo and connects it to the given existing users
func (s *TodoService) CreateTodo(input CreateTodoInput) (*models.Todo, error) {
	if input.TaskName == "" {
		return nil, ErrTaskNameRequired
	}

	if input.Status == "" {
		input.Status = models.TodoStatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.PriorityNormal
	}

	assigneeIDs := uniqueStrings(input.AssigneeIDs)
	if err := s.ensureUsersExist(assigneeIDs); err != nil {
		return nil, err
	}

	todo := &models.Todo{
		TaskName:    input.TaskName,
		Status:      input.Status,
		Priority:    input.Priority,
		Dates:       input.Dates,
		Description: input.Description,
	}

	if err := s.todoRepo.Create(todo, assigneeIDs); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return s.todoRepo.FindByID(todo.ID, todoPreloads...)
}

// UpdateTodo applies a partial update to an existing todo
func (s *TodoService) UpdateTodo(todoID string, input UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	var assigneeIDs []string
	if input.AssigneeIDs != nil {
		// Validate up front so a bad assignee list leaves no partial write
		assigneeIDs = uniqueStrings(*input.AssigneeIDs)
		if err := s.ensureUsersExist(assigneeIDs); err != nil {
			return nil, err
		}
	}

	if input.TaskName != nil {
		if *input.TaskName == "" {
			return nil, ErrTaskNameEmpty
		}
		todo.TaskName = *input.TaskName
	}
	if input.Status != nil {
		todo.Status = *input.Status
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	if input.Dates != nil {
		todo.Dates = *input.Dates
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	if input.AssigneeIDs != nil {
		if err := s.todoRepo.ReplaceAssignees(todo.ID, assigneeIDs); err != nil {
			return nil, fmt.Errorf("failed to replace assignees: %w", err)
		}
	}

	return s.todoRepo.FindByID(todo.ID, todoPreloads...)
}

// DeleteTodo removes a todo and its assignment rows
func (s *TodoService) DeleteTodo(todoID string) error {
	if _, err := s.todoRepo.FindByID(todoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to find todo: %w", err)
	}

	if err := s.todoRepo.Delete(todoID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

// ensureUsersExist verifies every given ID references an existing user
func (s *TodoService) ensureUsersExist(userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	count, err := s.userRepo.CountByIDs(userIDs)
	if err != nil {
		return fmt.Errorf("failed to verify assignees: %w", err)
	}
	if int(count) != len(userIDs) {
		return ErrInvalidAssignee
	}

	return nil
}

// uniqueStrings removes duplicate values from a slice of strings
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
