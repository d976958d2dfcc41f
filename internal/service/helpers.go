package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-track-tower/internal/domain"
	"task-track-tower/internal/dto"
	"task-track-tower/internal/lock"
	"task-track-tower/internal/metrics"
	"task-track-tower/internal/ordering"
	"task-track-tower/internal/repository"
	"task-track-tower/internal/response"
)

// boardLockKey scopes a lock to every ordered sequence owned by one board
func boardLockKey(boardID uuid.UUID) string {
	return "board:" + boardID.String()
}

// lockBoards acquires the locks of every given board in ascending key order
func lockBoards(ctx context.Context, locker lock.Locker, m *metrics.Metrics, logger *zap.Logger, boardIDs ...uuid.UUID) (func(), error) {
	keys := make([]string, len(boardIDs))
	for i, id := range boardIDs {
		keys[i] = boardLockKey(id)
	}

	start := time.Now()
	release, err := locker.Acquire(ctx, keys...)
	if m != nil {
		m.RecordLockWait(time.Since(start), err != nil)
	}
	if err != nil {
		logger.Warn("Failed to acquire board lock",
			zap.Strings("keys", keys),
			zap.Duration("waited", time.Since(start)),
			zap.Error(err))
		return nil, response.NewStoreFailureError("Board is busy, retry the request", err)
	}
	return release, nil
}

// validateTitle trims title and rejects blank values
func validateTitle(entity, title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", response.NewValidationError(entity+" title is required", "title must not be blank")
	}
	return trimmed, nil
}

// storeError translates a repository error into an AppError
func storeError(err error, notFoundMsg, failureMsg string) error {
	var appErr *response.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NewNotFoundError(notFoundMsg, "")
	case errors.Is(err, repository.ErrSequenceMismatch):
		return response.NewInvalidIndexError("Stored order changed, refresh and retry", err.Error())
	case errors.Is(err, ordering.ErrInvalidIndex):
		return response.NewInvalidIndexError("Move index is out of range", err.Error())
	default:
		return response.NewStoreFailureError(failureMsg, err)
	}
}

func toBoardResponse(b *domain.Board) dto.BoardResponse {
	return dto.BoardResponse{
		ID:        b.ID,
		Title:     b.Title,
		Color:     b.Color,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toTaskResponse(t *domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		ColumnID:    t.ColumnID,
		Title:       t.Title,
		Description: t.Description,
		Position:    t.Position,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toColumnResponse(c *domain.Column) dto.ColumnResponse {
	tasks := make([]dto.TaskResponse, len(c.Tasks))
	for i := range c.Tasks {
		tasks[i] = toTaskResponse(&c.Tasks[i])
	}
	return dto.ColumnResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Title:     c.Title,
		Position:  c.Position,
		Tasks:     tasks,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toColumnResponses(columns []*domain.Column) []dto.ColumnResponse {
	out := make([]dto.ColumnResponse, len(columns))
	for i, c := range columns {
		out[i] = toColumnResponse(c)
	}
	return out
}
