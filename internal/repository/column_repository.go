package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-track-tower/internal/domain"
)

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	Create(ctx context.Context, column *domain.Column) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	Update(ctx context.Context, column *domain.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceBoardColumnOrder(ctx context.Context, boardID uuid.UUID, columnIDs []uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// columnRepositoryImpl is the GORM implementation of ColumnRepository
type columnRepositoryImpl struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: db}
}

// Create appends a column at the end of its board. The board must exist.
func (r *columnRepositoryImpl) Create(ctx context.Context, column *domain.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board domain.Board
		if err := tx.Select("id").Where("id = ?", column.BoardID).First(&board).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.Column{}).Where("board_id = ?", column.BoardID).Count(&count).Error; err != nil {
			return err
		}
		column.Position = int(count)

		return tx.Omit("Tasks").Create(column).Error
	})
}

// FindByID finds a column by ID with its tasks ordered by position
func (r *columnRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	var column domain.Column
	if err := r.db.WithContext(ctx).
		Preload("Tasks", orderByPosition).
		Where("id = ?", id).
		First(&column).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

// FindByBoardID returns the columns of a board in display order, each with
// its ordered tasks
func (r *columnRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	var columns []*domain.Column
	if err := r.db.WithContext(ctx).
		Preload("Tasks", orderByPosition).
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Update persists the title of a column
func (r *columnRepositoryImpl) Update(ctx context.Context, column *domain.Column) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Column{}).
		Where("id = ?", column.ID).
		Updates(map[string]interface{}{"title": column.Title})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a column and its tasks, then closes the gap it leaves in
// the board's column positions
func (r *columnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column domain.Column
		if err := tx.Where("id = ?", id).First(&column).Error; err != nil {
			return err
		}

		if err := tx.Where("column_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&domain.Column{}).Error; err != nil {
			return err
		}

		return compactPositions(tx, domain.Column{}.TableName(), "board_id", column.BoardID)
	})
}

// ReplaceBoardColumnOrder stores columnIDs as the new column order of a
// board. columnIDs must name exactly the board's current columns.
func (r *columnRepositoryImpl) ReplaceBoardColumnOrder(ctx context.Context, boardID uuid.UUID, columnIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored []uuid.UUID
		if err := tx.Model(&domain.Column{}).
			Where("board_id = ?", boardID).
			Pluck("id", &stored).Error; err != nil {
			return err
		}
		if !sameIDSet(stored, columnIDs) {
			return ErrSequenceMismatch
		}

		for i, id := range columnIDs {
			if err := tx.Model(&domain.Column{}).
				Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored columns
func (r *columnRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Column{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uuid.UUID]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}
