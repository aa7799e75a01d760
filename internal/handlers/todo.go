package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/todowy/todowy-api/internal/dto"
	"github.com/todowy/todowy-api/internal/middleware"
	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/services"
	"github.com/todowy/todowy-api/internal/utils"
)

type TodoHandler struct {
	service *services.TodoService
}

func NewTodoHandler(service *services.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// dateFormats accepted for the dates field, tried in order
var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateFormats {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ListTodos returns a filtered, paginated page of todos
// Supports status, priority and search query parameters
func (h *TodoHandler) ListTodos(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListTodosInput{
		Search:   c.Query("search"),
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := models.ParseStatus(statusStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		input.Status = &status
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		priority, err := models.ParsePriority(priorityStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		input.Priority = &priority
	}

	todos, total, err := h.service.ListTodos(input)
	if err != nil {
		log.Printf("Error fetching todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos, params, total))
}

// GetTodo returns a specific todo by ID
// The todo is already loaded with assignees by the RequireTodo middleware
func (h *TodoHandler) GetTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Todo not found in context"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(todo))
}

// CreateTodo creates a new todo with its assignees
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	type CreateTodoRequest struct {
		TaskName    string   `json:"taskName" binding:"required"`
		Status      string   `json:"status"`
		Priority    string   `json:"priority"`
		Dates       string   `json:"dates" binding:"required"`
		Description string   `json:"description"`
		AssigneeIDs []string `json:"assigneeIds"`
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	input := services.CreateTodoInput{
		TaskName:    req.TaskName,
		Description: req.Description,
		AssigneeIDs: req.AssigneeIDs,
	}

	if req.Status != "" {
		status, err := models.ParseStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		input.Status = status
	}
	if req.Priority != "" {
		priority, err := models.ParsePriority(req.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		input.Priority = priority
	}

	dates, err := parseDate(req.Dates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dates"})
		return
	}
	input.Dates = dates

	todo, err := h.service.CreateTodo(input)
	if err != nil {
		log.Printf("Error creating todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create todo",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// UpdateTodo applies a partial update to an existing todo.
// Only fields present in the request body change; an assigneeIds field,
// empty array included, replaces the whole assignment set.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Todo not found in context"})
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var input services.UpdateTodoInput

	if taskName, ok := rawReq["taskName"]; ok {
		if taskNameStr, ok := taskName.(string); ok {
			input.TaskName = &taskNameStr
		}
	}
	if status, ok := rawReq["status"]; ok {
		statusStr, ok := status.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		parsed, err := models.ParseStatus(statusStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		input.Status = &parsed
	}
	if priority, ok := rawReq["priority"]; ok {
		priorityStr, ok := priority.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		parsed, err := models.ParsePriority(priorityStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		input.Priority = &parsed
	}
	if dates, ok := rawReq["dates"]; ok {
		datesStr, ok := dates.(string)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dates"})
			return
		}
		parsed, err := parseDate(datesStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dates"})
			return
		}
		input.Dates = &parsed
	}
	if description, ok := rawReq["description"]; ok {
		if description == nil {
			empty := ""
			input.Description = &empty
		} else if descStr, ok := description.(string); ok {
			input.Description = &descStr
		}
	}
	if assignees, ok := rawReq["assigneeIds"]; ok && assignees != nil {
		raw, ok := assignees.([]any)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigneeIds"})
			return
		}
		ids := make([]string, 0, len(raw))
		for _, v := range raw {
			id, ok := v.(string)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigneeIds"})
				return
			}
			ids = append(ids, id)
		}
		input.AssigneeIDs = &ids
	}

	updated, err := h.service.UpdateTodo(todo.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		case errors.Is(err, services.ErrTaskNameEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "taskName cannot be empty"})
		default:
			log.Printf("Error updating todo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to update todo",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*updated))
}

// DeleteTodo deletes a todo
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	todo, ok := middleware.GetTodo(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Todo not found in context"})
		return
	}

	if err := h.service.DeleteTodo(todo.ID); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Printf("Error deleting todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted successfully",
	})
}
