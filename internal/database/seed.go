package database

import (
	"fmt"
	"log"
	"time"

	"github.com/todowy/todowy-api/internal/models"
	"gorm.io/gorm"
)

type seedTodo struct {
	taskName    string
	status      models.TodoStatus
	priority    models.Priority
	dates       time.Time
	description string
	assignees   []string // user emails
}

var seedUsers = []models.User{
	{Name: "John Doe", Email: "john@example.com"},
	{Name: "Jane Smith", Email: "jane@example.com"},
	{Name: "Mike Johnson", Email: "mike@example.com"},
	{Name: "Sarah Wilson", Email: "sarah@example.com"},
}

var seedTodos = []seedTodo{
	{
		taskName:    "Implement user authentication",
		status:      models.TodoStatusInProgress,
		priority:    models.PriorityUrgent,
		dates:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		description: "Set up NextAuth.js with OAuth providers",
		assignees:   []string{"john@example.com", "jane@example.com"},
	},
	{
		taskName:    "Design database schema",
		status:      models.TodoStatusComplete,
		priority:    models.PriorityImportant,
		dates:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		description: "Create Prisma schema for todos and users",
		assignees:   []string{"mike@example.com"},
	},
	{
		taskName:    "Setup CI/CD pipeline",
		status:      models.TodoStatusTodo,
		priority:    models.PriorityNormal,
		dates:       time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
		description: "Configure GitHub Actions for automated deployment",
		assignees:   []string{"john@example.com", "sarah@example.com"},
	},
	{
		taskName:    "Write unit tests",
		status:      models.TodoStatusTodo,
		priority:    models.PriorityImportant,
		dates:       time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		description: "Add comprehensive test coverage for API endpoints",
		assignees:   []string{"jane@example.com", "mike@example.com"},
	},
	{
		taskName:    "Update documentation",
		status:      models.TodoStatusTodo,
		priority:    models.PriorityLow,
		dates:       time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
		description: "Update README and API documentation",
		assignees:   []string{"sarah@example.com"},
	},
}

// Seed loads the sample users and todos. Users are upserted by email so
// the seeder can run repeatedly; todos are skipped when already present.
func Seed(db *gorm.DB) error {
	log.Println("Seeding database...")

	usersByEmail := make(map[string]models.User, len(seedUsers))
	for _, u := range seedUsers {
		var user models.User
		if err := db.Where(models.User{Email: u.Email}).
			Attrs(models.User{Name: u.Name}).
			FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		usersByEmail[u.Email] = user
	}
	log.Printf("Users created: %d", len(usersByEmail))

	created := 0
	for _, t := range seedTodos {
		var count int64
		if err := db.Model(&models.Todo{}).
			Where("task_name = ?", t.taskName).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check todo %q: %w", t.taskName, err)
		}
		if count > 0 {
			continue
		}

		todo := models.Todo{
			TaskName:    t.taskName,
			Status:      t.status,
			Priority:    t.priority,
			Dates:       t.dates,
			Description: t.description,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&todo).Error; err != nil {
				return err
			}
			for _, email := range t.assignees {
				assignment := models.TodoAssignee{
					TodoID: todo.ID,
					UserID: usersByEmail[email].ID,
				}
				if err := tx.Create(&assignment).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to seed todo %q: %w", t.taskName, err)
		}
		created++
	}
	log.Printf("Todos created: %d", created)

	log.Println("Seeding completed")
	return nil
}
