package models

// TodoAssignee links a todo to an assigned user. Rows are hard-deleted:
// updating a todo's assignee set replaces the whole set, so there is
// nothing to resurrect.
type TodoAssignee struct {
	TodoID string `gorm:"type:varchar(36);primarykey" json:"todoId"`
	UserID string `gorm:"type:varchar(36);primarykey" json:"userId"`

	// Relations
	Todo Todo `gorm:"foreignKey:TodoID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
