package domain

import "github.com/google/uuid"

// Column represents a board column. Position is the 0-based display index
// among the columns of the same board.
type Column struct {
	BaseModel
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_columns_board_position,priority:1" json:"boardId"`
	Title    string    `gorm:"type:varchar(255);not null" json:"title"`
	Position int       `gorm:"type:int;not null;default:0;index:idx_columns_board_position,priority:2" json:"position"`
	Tasks    []Task    `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE" json:"tasks"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "columns"
}

// TaskAt returns the task stored at index, or false when no task occupies it
func (c *Column) TaskAt(index int) (Task, bool) {
	if index < 0 || index >= len(c.Tasks) {
		return Task{}, false
	}
	return c.Tasks[index], true
}

// TaskIndex returns the index of the task with the given id, or -1
func (c *Column) TaskIndex(taskID uuid.UUID) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
