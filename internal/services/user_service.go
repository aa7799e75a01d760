package services

import (
	"errors"
	"fmt"

	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/repository"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput represents filters for listing users
type ListUsersInput struct {
	Search   string
	Page     int
	PageSize int
}

// ListUsers returns a page of users with assigned-todo counts, ordered by name
func (s *UserService) ListUsers(input ListUsersInput) ([]repository.UserWithCount, int64, error) {
	filter := repository.UserFilter{
		Search:   input.Search,
		Page:     input.Page,
		PageSize: input.PageSize,
	}

	users, total, err := s.userRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// CreateUser creates a user. A duplicate email surfaces as the store's
// unique-constraint error.
func (s *UserService) CreateUser(name, email string) (*models.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	user := &models.User{
		Name:  name,
		Email: email,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
