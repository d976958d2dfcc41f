package domain

import "github.com/google/uuid"

// Task represents a unit of work owned by exactly one column.
// Position is the 0-based index inside the owning column.
type Task struct {
	BaseModel
	ColumnID    uuid.UUID `gorm:"type:uuid;not null;index:idx_tasks_column_position,priority:1" json:"columnId"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	Position    int       `gorm:"type:int;not null;default:0;index:idx_tasks_column_position,priority:2" json:"position"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
