package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a new board
// @Description color is optional; a palette color is picked when omitted
type CreateBoardRequest struct {
	Title string `json:"title" example:"Sprint 1"`
	Color string `json:"color,omitempty" example:"bg-blue-500"`
}

// UpdateBoardRequest represents the request to update a board
type UpdateBoardRequest struct {
	Title string  `json:"title" example:"Sprint 1 - Retro"`
	Color *string `json:"color,omitempty" example:"bg-teal-500"`
}

// BoardResponse represents a board without its columns
type BoardResponse struct {
	ID        uuid.UUID `json:"id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title     string    `json:"title" example:"Sprint 1"`
	Color     string    `json:"color" example:"bg-purple-500"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardDetailResponse is a board with its ordered columns and tasks
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnResponse `json:"columns"`
}

// DeleteResponse carries the id of a deleted entity
type DeleteResponse struct {
	ID uuid.UUID `json:"id"`
}
