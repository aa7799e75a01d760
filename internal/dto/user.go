package dto

import (
	"time"

	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/repository"
	"github.com/todowy/todowy-api/internal/utils"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCountDTO carries relation counts for the user list view
type UserCountDTO struct {
	AssignedTodos int64 `json:"assignedTodos"`
}

// UserListItemDTO represents a user in list responses, annotated with
// the number of todos assigned to them
type UserListItemDTO struct {
	UserDTO
	Count UserCountDTO `json:"_count"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Data       []UserListItemDTO        `json:"data"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserListItemDTO converts an annotated user to UserListItemDTO
func ToUserListItemDTO(user repository.UserWithCount) UserListItemDTO {
	return UserListItemDTO{
		UserDTO: ToUserDTO(user.User),
		Count:   UserCountDTO{AssignedTodos: user.AssignedCount},
	}
}

// ToUserListResponse converts a page of users to the list envelope
func ToUserListResponse(users []repository.UserWithCount, params utils.PaginationParams, totalCount int64) UserListResponse {
	items := make([]UserListItemDTO, len(users))
	for i, user := range users {
		items[i] = ToUserListItemDTO(user)
	}

	return UserListResponse{
		Data:       items,
		Pagination: utils.NewPaginationResponse(params, totalCount),
	}
}
