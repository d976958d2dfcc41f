package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-track-tower/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithColumns(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Omit("Columns").Create(board).Error
}

// FindByID finds a board by ID without its columns
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithColumns finds a board with its columns and their tasks, both
// ordered by position
func (r *boardRepositoryImpl) FindByIDWithColumns(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Columns", orderByPosition).
		Preload("Columns.Tasks", orderByPosition).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAll returns every board, oldest first
func (r *boardRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update persists the title and color of a board
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ?", board.ID).
		Updates(map[string]interface{}{
			"title": board.Title,
			"color": board.Color,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a board together with its columns and their tasks
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var columnIDs []uuid.UUID
		if err := tx.Model(&domain.Column{}).
			Where("board_id = ?", id).
			Pluck("id", &columnIDs).Error; err != nil {
			return err
		}

		if len(columnIDs) > 0 {
			if err := tx.Where("column_id IN ?", columnIDs).Delete(&domain.Task{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id = ?", id).Delete(&domain.Column{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&domain.Board{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the number of stored boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
