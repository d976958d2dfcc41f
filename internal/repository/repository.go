package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSequenceMismatch is returned when a replacement ordering does not cover
// exactly the rows currently stored for its parent.
var ErrSequenceMismatch = errors.New("sequence does not match stored rows")

// compactPositions rewrites position to 0..n-1 for every row of table whose
// parent column equals parentID, preserving the current relative order.
func compactPositions(tx *gorm.DB, table, parentColumn string, parentID uuid.UUID) error {
	var ids []uuid.UUID
	if err := tx.Table(table).
		Where(parentColumn+" = ?", parentID).
		Order("position ASC").
		Pluck("id", &ids).Error; err != nil {
		return err
	}

	for i, id := range ids {
		if err := tx.Table(table).
			Where("id = ? AND position <> ?", id, i).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
