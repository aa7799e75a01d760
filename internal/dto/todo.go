package dto

import (
	"time"

	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/utils"
)

// AssigneeDTO represents a todo assignment in API responses
type AssigneeDTO struct {
	TodoID string  `json:"todoId"`
	UserID string  `json:"userId"`
	User   UserDTO `json:"user"`
}

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID          string            `json:"id"`
	TaskName    string            `json:"taskName"`
	Status      models.TodoStatus `json:"status"`
	Dates       time.Time         `json:"dates"`
	Priority    models.Priority   `json:"priority"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Assignees   []AssigneeDTO     `json:"assignees"`
}

// TodoListResponse represents a paginated list of todos
type TodoListResponse struct {
	Data       []TodoDTO                `json:"data"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTodoDTO converts a Todo model to TodoDTO. Assignees is always an
// array on the wire, never null.
func ToTodoDTO(todo models.Todo) TodoDTO {
	assignees := make([]AssigneeDTO, len(todo.Assignees))
	for i, assignment := range todo.Assignees {
		assignees[i] = AssigneeDTO{
			TodoID: assignment.TodoID,
			UserID: assignment.UserID,
			User:   ToUserDTO(assignment.User),
		}
	}

	return TodoDTO{
		ID:          todo.ID,
		TaskName:    todo.TaskName,
		Status:      todo.Status,
		Dates:       todo.Dates,
		Priority:    todo.Priority,
		Description: todo.Description,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
		Assignees:   assignees,
	}
}

// ToTodoListResponse converts a page of todos to the list envelope
func ToTodoListResponse(todos []models.Todo, params utils.PaginationParams, totalCount int64) TodoListResponse {
	items := make([]TodoDTO, len(todos))
	for i, todo := range todos {
		items[i] = ToTodoDTO(todo)
	}

	return TodoListResponse{
		Data:       items,
		Pagination: utils.NewPaginationResponse(params, totalCount),
	}
}
