package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todowy/todowy-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Todo{},
		&models.TodoAssignee{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTodo(t *testing.T, db *gorm.DB, taskName, description string, status models.TodoStatus, priority models.Priority) models.Todo {
	t.Helper()
	todo := models.Todo{
		TaskName:    taskName,
		Description: description,
		Status:      status,
		Priority:    priority,
		Dates:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&todo).Error)
	return todo
}

func TestTodoRepository_Create_WithAssignees(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	john := createUser(t, db, "John Doe", "john@example.com")
	jane := createUser(t, db, "Jane Smith", "jane@example.com")

	todo := &models.Todo{
		TaskName: "Implement user authentication",
		Status:   models.TodoStatusInProgress,
		Priority: models.PriorityUrgent,
		Dates:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(todo, []string{john.ID, jane.ID}))
	require.NotEmpty(t, todo.ID)

	loaded, err := repo.FindByID(todo.ID, "Assignees", "Assignees.User")
	require.NoError(t, err)
	require.Len(t, loaded.Assignees, 2)

	emails := []string{loaded.Assignees[0].User.Email, loaded.Assignees[1].User.Email}
	assert.ElementsMatch(t, []string{"john@example.com", "jane@example.com"}, emails)
}

func TestTodoRepository_Create_RollsBackWhenAssignmentsFail(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	john := createUser(t, db, "John Doe", "john@example.com")

	todo := &models.Todo{
		TaskName: "Orphan",
		Status:   models.TodoStatusTodo,
		Priority: models.PriorityNormal,
		Dates:    time.Now(),
	}
	// Duplicate pair violates the composite primary key
	err := repo.Create(todo, []string{john.ID, john.ID})
	require.Error(t, err)

	var count int64
	db.Model(&models.Todo{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTodoRepository_List_Filters(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	auth := createTodo(t, db, "Implement user authentication", "Set up OAuth providers", models.TodoStatusInProgress, models.PriorityUrgent)
	docs := createTodo(t, db, "Update documentation", "Update README and API documentation", models.TodoStatusTodo, models.PriorityLow)
	createTodo(t, db, "Write unit tests", "Add coverage for API endpoints", models.TodoStatusTodo, models.PriorityImportant)

	status := models.TodoStatusInProgress
	todos, total, err := repo.List(TodoFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, todos, 1)
	assert.Equal(t, auth.ID, todos[0].ID)

	priority := models.PriorityLow
	todos, total, err = repo.List(TodoFilter{Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, todos, 1)
	assert.Equal(t, docs.ID, todos[0].ID)
}

func TestTodoRepository_List_SearchIsCaseInsensitive(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	auth := createTodo(t, db, "Implement user authentication", "", models.TodoStatusInProgress, models.PriorityUrgent)
	readme := createTodo(t, db, "Update documentation", "refresh the AUTH section of the README", models.TodoStatusTodo, models.PriorityLow)
	createTodo(t, db, "Write unit tests", "Add coverage for API endpoints", models.TodoStatusTodo, models.PriorityImportant)

	todos, total, err := repo.List(TodoFilter{Search: "auth"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	ids := make([]string, len(todos))
	for i, todo := range todos {
		ids[i] = todo.ID
	}
	assert.ElementsMatch(t, []string{auth.ID, readme.ID}, ids)
}

func TestTodoRepository_List_OrderAndPagination(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		todo := createTodo(t, db, fmt.Sprintf("Task %d", i), "", models.TodoStatusTodo, models.PriorityNormal)
		// Spread creation times so the ordering is deterministic
		require.NoError(t, db.Model(&models.Todo{}).Where("id = ?", todo.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error)
	}

	todos, total, err := repo.List(TodoFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, todos, 2)

	// Newest created first
	assert.Equal(t, "Task 4", todos[0].TaskName)
	assert.Equal(t, "Task 3", todos[1].TaskName)

	todos, _, err = repo.List(TodoFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Task 0", todos[0].TaskName)
}

func TestTodoRepository_ReplaceAssignees(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	john := createUser(t, db, "John Doe", "john@example.com")
	jane := createUser(t, db, "Jane Smith", "jane@example.com")
	mike := createUser(t, db, "Mike Johnson", "mike@example.com")

	todo := &models.Todo{
		TaskName: "Rotate on-call",
		Status:   models.TodoStatusTodo,
		Priority: models.PriorityNormal,
		Dates:    time.Now(),
	}
	require.NoError(t, repo.Create(todo, []string{john.ID, jane.ID}))

	require.NoError(t, repo.ReplaceAssignees(todo.ID, []string{mike.ID}))

	loaded, err := repo.FindByID(todo.ID, "Assignees")
	require.NoError(t, err)
	require.Len(t, loaded.Assignees, 1)
	assert.Equal(t, mike.ID, loaded.Assignees[0].UserID)

	require.NoError(t, repo.ReplaceAssignees(todo.ID, nil))

	loaded, err = repo.FindByID(todo.ID, "Assignees")
	require.NoError(t, err)
	assert.Empty(t, loaded.Assignees)
}

func TestTodoRepository_Delete_RemovesAssignments(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTodoRepository(db)

	john := createUser(t, db, "John Doe", "john@example.com")

	todo := &models.Todo{
		TaskName: "Short lived",
		Status:   models.TodoStatusTodo,
		Priority: models.PriorityNormal,
		Dates:    time.Now(),
	}
	require.NoError(t, repo.Create(todo, []string{john.ID}))
	require.NoError(t, repo.Delete(todo.ID))

	_, err := repo.FindByID(todo.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.TodoAssignee{}).Where("todo_id = ?", todo.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUserRepository_List_CountsAndOrder(t *testing.T) {
	db := setupRepoDB(t)
	userRepo := NewUserRepository(db)
	todoRepo := NewTodoRepository(db)

	john := createUser(t, db, "John Doe", "john@example.com")
	jane := createUser(t, db, "Jane Smith", "jane@example.com")

	todo := &models.Todo{
		TaskName: "Implement user authentication",
		Status:   models.TodoStatusInProgress,
		Priority: models.PriorityUrgent,
		Dates:    time.Now(),
	}
	require.NoError(t, todoRepo.Create(todo, []string{john.ID}))

	users, total, err := userRepo.List(UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, users, 2)

	assert.Equal(t, jane.ID, users[0].ID)
	assert.Equal(t, int64(0), users[0].AssignedCount)
	assert.Equal(t, john.ID, users[1].ID)
	assert.Equal(t, int64(1), users[1].AssignedCount)
}

func TestUserRepository_CountByIDs(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)

	john := createUser(t, db, "John Doe", "john@example.com")

	count, err := repo.CountByIDs([]string{john.ID, "no-such-user"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
