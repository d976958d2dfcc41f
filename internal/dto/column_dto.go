package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateColumnRequest represents the request to append a column to a board
type CreateColumnRequest struct {
	BoardID uuid.UUID `json:"boardId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title   string    `json:"title" example:"In Progress"`
}

// UpdateColumnRequest represents the request to rename a column
type UpdateColumnRequest struct {
	Title string `json:"title" example:"Review"`
}

// MoveColumnRequest moves a column inside its board's column order.
// destIndex is interpreted against the order with the column removed.
type MoveColumnRequest struct {
	SourceIndex *int `json:"sourceIndex" binding:"required" example:"0"`
	DestIndex   *int `json:"destIndex" binding:"required" example:"2"`
}

// ColumnResponse represents a column with its ordered tasks
type ColumnResponse struct {
	ID        uuid.UUID      `json:"id"`
	BoardID   uuid.UUID      `json:"boardId"`
	Title     string         `json:"title"`
	Position  int            `json:"position"`
	Tasks     []TaskResponse `json:"tasks"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// MoveColumnResponse echoes the move and returns the board's new column order
type MoveColumnResponse struct {
	ColumnID    uuid.UUID        `json:"columnId"`
	BoardID     uuid.UUID        `json:"boardId"`
	SourceIndex int              `json:"sourceIndex"`
	DestIndex   int              `json:"destIndex"`
	Columns     []ColumnResponse `json:"columns"`
}
