package repository

import (
	"strings"

	"github.com/todowy/todowy-api/internal/database"
	"github.com/todowy/todowy-api/internal/models"
	"github.com/todowy/todowy-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users ordered by name with their assigned-todo counts
func (r *GormUserRepository) List(filter UserFilter) ([]UserWithCount, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("users.name ASC")

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	var users []models.User
	if err := listQuery.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	counts, err := r.assignmentCounts(users)
	if err != nil {
		return nil, 0, err
	}

	result := make([]UserWithCount, len(users))
	for i, user := range users {
		result[i] = UserWithCount{
			User:          user,
			AssignedCount: counts[user.ID],
		}
	}

	return result, total, nil
}

// assignmentCounts returns the number of assignment rows per user for the
// given page of users
func (r *GormUserRepository) assignmentCounts(users []models.User) (map[string]int64, error) {
	counts := make(map[string]int64, len(users))
	if len(users) == 0 {
		return counts, nil
	}

	ids := make([]string, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}

	var rows []struct {
		UserID string
		Total  int64
	}
	err := r.db.Model(&models.TodoAssignee{}).
		Select("user_id, COUNT(*) AS total").
		Where("user_id IN ?", ids).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.UserID] = row.Total
	}

	return counts, nil
}

// CountByIDs counts how many of the given user IDs exist
func (r *GormUserRepository) CountByIDs(ids []string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}
