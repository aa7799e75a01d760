package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TodoStatus string

const (
	TodoStatusTodo       TodoStatus = "TODO"
	TodoStatusInProgress TodoStatus = "IN_PROGRESS"
	TodoStatusComplete   TodoStatus = "COMPLETE"
)

type Priority string

const (
	PriorityUrgent    Priority = "URGENT"
	PriorityImportant Priority = "IMPORTANT"
	PriorityNormal    Priority = "NORMAL"
	PriorityLow       Priority = "LOW"
)

// ParseStatus validates a wire status value. Unknown values are rejected
// rather than passed through to the database.
func ParseStatus(value string) (TodoStatus, error) {
	switch TodoStatus(value) {
	case TodoStatusTodo, TodoStatusInProgress, TodoStatusComplete:
		return TodoStatus(value), nil
	}
	return "", fmt.Errorf("invalid status: %q", value)
}

// ParsePriority validates a wire priority value.
func ParsePriority(value string) (Priority, error) {
	switch Priority(value) {
	case PriorityUrgent, PriorityImportant, PriorityNormal, PriorityLow:
		return Priority(value), nil
	}
	return "", fmt.Errorf("invalid priority: %q", value)
}

type Todo struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	TaskName    string         `gorm:"not null" json:"taskName"`
	Status      TodoStatus     `gorm:"type:varchar(20);not null;default:'TODO';index" json:"status"`
	Priority    Priority       `gorm:"type:varchar(20);not null;default:'NORMAL';index" json:"priority"`
	Dates       time.Time      `json:"dates"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignees []TodoAssignee `gorm:"foreignKey:TodoID" json:"assignees,omitempty"`
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
