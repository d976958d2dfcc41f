package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest represents the request to append a task to a column
type CreateTaskRequest struct {
	Title       string `json:"title" example:"Create wireframes"`
	Description string `json:"description" example:"Design preliminary wireframes for key screens"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MoveTaskRequest moves a task within a column or across columns.
// sourceIndex must point at the task being moved.
type MoveTaskRequest struct {
	SourceColumnID uuid.UUID `json:"sourceColumnId" binding:"required"`
	DestColumnID   uuid.UUID `json:"destColumnId" binding:"required"`
	SourceIndex    *int      `json:"sourceIndex" binding:"required" example:"0"`
	DestIndex      *int      `json:"destIndex" binding:"required" example:"1"`
}

// TaskResponse represents a task
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	ColumnID    uuid.UUID `json:"columnId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MoveTaskResponse echoes the move and returns the affected columns.
// Columns holds the source column first, then the destination when different.
type MoveTaskResponse struct {
	TaskID         uuid.UUID        `json:"taskId"`
	SourceColumnID uuid.UUID        `json:"sourceColumnId"`
	DestColumnID   uuid.UUID        `json:"destColumnId"`
	SourceIndex    int              `json:"sourceIndex"`
	DestIndex      int              `json:"destIndex"`
	Columns        []ColumnResponse `json:"columns"`
}
