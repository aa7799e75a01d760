package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todowy/todowy-api/internal/dto"
	"github.com/todowy/todowy-api/internal/services"
	"github.com/todowy/todowy-api/internal/utils"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers returns a paginated page of users with assigned-todo counts
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	input := services.ListUsersInput{
		Search:   c.Query("search"),
		Page:     params.Page,
		PageSize: params.Limit,
	}

	users, total, err := h.service.ListUsers(input)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params, total))
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.CreateUser(req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// Duplicate email lands here as the store's unique-constraint error
			log.Printf("Error creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create user",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}
