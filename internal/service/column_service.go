package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-track-tower/internal/domain"
	"task-track-tower/internal/dto"
	"task-track-tower/internal/lock"
	"task-track-tower/internal/metrics"
	"task-track-tower/internal/ordering"
	"task-track-tower/internal/repository"
	"task-track-tower/internal/response"
)

// ColumnService defines the interface for column business logic
type ColumnService interface {
	CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	GetColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]dto.ColumnResponse, error)
	UpdateColumn(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	DeleteColumn(ctx context.Context, columnID uuid.UUID) (*dto.DeleteResponse, error)
	MoveColumn(ctx context.Context, columnID uuid.UUID, req *dto.MoveColumnRequest) (*dto.MoveColumnResponse, error)
}

// columnServiceImpl is the implementation of ColumnService
type columnServiceImpl struct {
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	locker     lock.Locker
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewColumnService creates a new instance of ColumnService
func NewColumnService(
	boardRepo repository.BoardRepository,
	columnRepo repository.ColumnRepository,
	locker lock.Locker,
	m *metrics.Metrics,
	logger *zap.Logger,
) ColumnService {
	return &columnServiceImpl{
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		locker:     locker,
		metrics:    m,
		logger:     logger,
	}
}

// CreateColumn appends an empty column to the end of a board
func (s *columnServiceImpl) CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	title, err := validateTitle("Column", req.Title)
	if err != nil {
		return nil, err
	}

	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, req.BoardID)
	if err != nil {
		return nil, err
	}
	defer release()

	column := &domain.Column{
		BoardID: req.BoardID,
		Title:   title,
	}
	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, storeError(err, "Board not found", "Failed to create column")
	}

	s.logger.Info("Column created",
		zap.String("column_id", column.ID.String()),
		zap.String("board_id", column.BoardID.String()),
		zap.Int("position", column.Position))

	resp := toColumnResponse(column)
	return &resp, nil
}

// GetColumnsByBoard returns a board's columns in display order
func (s *columnServiceImpl) GetColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]dto.ColumnResponse, error) {
	if _, err := s.boardRepo.FindByID(ctx, boardID); err != nil {
		return nil, storeError(err, "Board not found", "Failed to fetch board")
	}

	columns, err := s.columnRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, storeError(err, "Board not found", "Failed to fetch columns")
	}
	return toColumnResponses(columns), nil
}

// UpdateColumn renames a column
func (s *columnServiceImpl) UpdateColumn(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	title, err := validateTitle("Column", req.Title)
	if err != nil {
		return nil, err
	}

	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	column.Title = title
	if err := s.columnRepo.Update(ctx, column); err != nil {
		return nil, storeError(err, "Column not found", "Failed to update column")
	}

	updated, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	resp := toColumnResponse(updated)
	return &resp, nil
}

// DeleteColumn deletes a column and the tasks it holds
func (s *columnServiceImpl) DeleteColumn(ctx context.Context, columnID uuid.UUID) (*dto.DeleteResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, column.BoardID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.columnRepo.Delete(ctx, columnID); err != nil {
		return nil, storeError(err, "Column not found", "Failed to delete column")
	}

	s.logger.Info("Column deleted",
		zap.String("column_id", columnID.String()),
		zap.String("board_id", column.BoardID.String()),
		zap.Int("tasks_removed", len(column.Tasks)))

	return &dto.DeleteResponse{ID: columnID}, nil
}

// MoveColumn moves a column to destIndex within its board's column order.
// sourceIndex must be the column's current index.
func (s *columnServiceImpl) MoveColumn(ctx context.Context, columnID uuid.UUID, req *dto.MoveColumnRequest) (*dto.MoveColumnResponse, error) {
	if req.SourceIndex == nil || req.DestIndex == nil {
		return nil, response.NewValidationError("sourceIndex and destIndex are required", "")
	}
	from, to := *req.SourceIndex, *req.DestIndex

	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, column.BoardID)
	if err != nil {
		return nil, err
	}
	defer release()

	columns, err := s.columnRepo.FindByBoardID(ctx, column.BoardID)
	if err != nil {
		return nil, storeError(err, "Board not found", "Failed to fetch columns")
	}

	current := ordering.IndexOf(columns, func(c *domain.Column) bool { return c.ID == columnID })
	if current < 0 {
		return nil, response.NewNotFoundError("Column not found", "")
	}
	if from != current {
		return nil, response.NewInvalidIndexError("Column is not at sourceIndex, refresh and retry", "")
	}

	reordered, err := ordering.Reorder(columns, from, to)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to move column")
	}

	ids := make([]uuid.UUID, len(reordered))
	for i, c := range reordered {
		ids[i] = c.ID
		c.Position = i
	}

	if err := s.columnRepo.ReplaceBoardColumnOrder(ctx, column.BoardID, ids); err != nil {
		s.logger.Error("Failed to persist column order",
			zap.String("board_id", column.BoardID.String()),
			zap.Error(err))
		return nil, storeError(err, "Board not found", "Failed to move column")
	}

	if s.metrics != nil {
		s.metrics.RecordColumnMove()
	}

	s.logger.Info("Column moved",
		zap.String("column_id", columnID.String()),
		zap.String("board_id", column.BoardID.String()),
		zap.Int("source_index", from),
		zap.Int("dest_index", to))

	return &dto.MoveColumnResponse{
		ColumnID:    columnID,
		BoardID:     column.BoardID,
		SourceIndex: from,
		DestIndex:   to,
		Columns:     toColumnResponses(reordered),
	}, nil
}
