package repository

import (
	"strings"

	"github.com/todowy/todowy-api/internal/database"
	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/utils"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a todo and its assignment rows in one transaction
func (r *GormTodoRepository) Create(todo *models.Todo, assigneeIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(todo).Error; err != nil {
			return err
		}

		if len(assigneeIDs) == 0 {
			return nil
		}

		assignments := make([]models.TodoAssignee, len(assigneeIDs))
		for i, userID := range assigneeIDs {
			assignments[i] = models.TodoAssignee{
				TodoID: todo.ID,
				UserID: userID,
			}
		}

		return tx.Create(&assignments).Error
	})
}

// FindByID finds a todo by ID with optional preloading
func (r *GormTodoRepository) FindByID(id string, preload ...string) (*models.Todo, error) {
	var todo models.Todo
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&todo).Error; err != nil {
		return nil, err
	}

	return &todo, nil
}

// List retrieves todos with filtering and pagination, newest first
func (r *GormTodoRepository) List(filter TodoFilter) ([]models.Todo, int64, error) {
	var todos []models.Todo

	query := r.db.Model(&models.Todo{})

	if filter.Status != nil {
		query = query.Where("todos.status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("todos.priority = ?", *filter.Priority)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(todos.task_name) LIKE ? OR LOWER(todos.description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("todos.created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Preload("Assignees").Preload("Assignees.User").Find(&todos).Error; err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

// Update updates a todo
func (r *GormTodoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// ReplaceAssignees deletes the todo's assignment rows and inserts the new set.
// Runs in one transaction so a concurrent reader never sees the todo with the
// old rows gone and the new ones not yet written.
func (r *GormTodoRepository) ReplaceAssignees(todoID string, userIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", todoID).Delete(&models.TodoAssignee{}).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		assignments := make([]models.TodoAssignee, len(userIDs))
		for i, userID := range userIDs {
			assignments[i] = models.TodoAssignee{
				TodoID: todoID,
				UserID: userID,
			}
		}

		return tx.Create(&assignments).Error
	})
}

// Delete removes a todo together with its assignment rows
func (r *GormTodoRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&models.TodoAssignee{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Todo{}).Error
	})
}
