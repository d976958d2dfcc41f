package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"task-track-tower/internal/domain"
	"task-track-tower/internal/dto"
	"task-track-tower/internal/lock"
	"task-track-tower/internal/metrics"
	"task-track-tower/internal/repository"
	"task-track-tower/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	ListBoards(ctx context.Context) ([]dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) (*dto.DeleteResponse, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	locker    lock.Locker
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	locker lock.Locker,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		locker:    locker,
		metrics:   m,
		logger:    logger,
	}
}

// CreateBoard creates a new board, picking a palette color when none is given
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	title, err := validateTitle("Board", req.Title)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = domain.RandomBoardColor()
	} else if !domain.IsBoardColor(color) {
		return nil, response.NewValidationError("Unsupported board color", color)
	}

	board := &domain.Board{
		Title: title,
		Color: color,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		s.logger.Error("Failed to create board", zap.Error(err))
		return nil, storeError(err, "Board not found", "Failed to create board")
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}

	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("color", board.Color))

	resp := toBoardResponse(board)
	return &resp, nil
}

// GetBoard retrieves a board with its ordered columns and tasks
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindByIDWithColumns(ctx, boardID)
	if err != nil {
		return nil, storeError(err, "Board not found", "Failed to fetch board")
	}

	columns := make([]*domain.Column, len(board.Columns))
	for i := range board.Columns {
		columns[i] = &board.Columns[i]
	}

	return &dto.BoardDetailResponse{
		BoardResponse: toBoardResponse(board),
		Columns:       toColumnResponses(columns),
	}, nil
}

// ListBoards returns every board, oldest first
func (s *boardServiceImpl) ListBoards(ctx context.Context) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err, "Board not found", "Failed to list boards")
	}

	out := make([]dto.BoardResponse, len(boards))
	for i, b := range boards {
		out[i] = toBoardResponse(b)
	}
	return out, nil
}

// UpdateBoard renames a board and optionally recolors it
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	title, err := validateTitle("Board", req.Title)
	if err != nil {
		return nil, err
	}
	if req.Color != nil && !domain.IsBoardColor(*req.Color) {
		return nil, response.NewValidationError("Unsupported board color", *req.Color)
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, storeError(err, "Board not found", "Failed to fetch board")
	}

	board.Title = title
	if req.Color != nil {
		board.Color = *req.Color
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		s.logger.Error("Failed to update board", zap.String("board_id", boardID.String()), zap.Error(err))
		return nil, storeError(err, "Board not found", "Failed to update board")
	}

	updated, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, storeError(err, "Board not found", "Failed to fetch board")
	}

	resp := toBoardResponse(updated)
	return &resp, nil
}

// DeleteBoard deletes a board with all of its columns and tasks
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) (*dto.DeleteResponse, error) {
	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, boardID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return nil, storeError(err, "Board not found", "Failed to delete board")
	}

	s.logger.Info("Board deleted", zap.String("board_id", boardID.String()))
	return &dto.DeleteResponse{ID: boardID}, nil
}
