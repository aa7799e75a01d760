package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todowy/todowy-api/internal/database"
	"github.com/todowy/todowy-api/internal/models"
)

const todoContextKey = "todo"

// RequireTodo loads the todo addressed by the :id route parameter into the
// request context, answering 404 when no such row exists. Read, update and
// delete all go through here so the not-found behavior stays uniform.
func RequireTodo() gin.HandlerFunc {
	return func(c *gin.Context) {
		todoID := c.Param("id")

		var todo models.Todo
		if err := database.GetDB().
			Preload("Assignees").
			Preload("Assignees.User").
			Where("id = ?", todoID).
			First(&todo).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Todo not found",
			})
			c.Abort()
			return
		}

		c.Set(todoContextKey, todo)
		c.Next()
	}
}

// GetTodo returns the todo loaded by RequireTodo
func GetTodo(c *gin.Context) (models.Todo, bool) {
	value, exists := c.Get(todoContextKey)
	if !exists {
		return models.Todo{}, false
	}

	todo, ok := value.(models.Todo)
	return todo, ok
}
