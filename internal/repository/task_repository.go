package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-track-tower/internal/domain"
)

// TaskSequence is the complete ordered task list a column should hold
type TaskSequence struct {
	ColumnID uuid.UUID
	Tasks    []domain.Task
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceColumnTasks(ctx context.Context, sequences ...TaskSequence) error
	Count(ctx context.Context) (int64, error)
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create appends a task at the end of its column. The column must exist.
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var column domain.Column
		if err := tx.Select("id").Where("id = ?", task.ColumnID).First(&column).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.Task{}).Where("column_id = ?", task.ColumnID).Count(&count).Error; err != nil {
			return err
		}
		task.Position = int(count)

		return tx.Create(task).Error
	})
}

// FindByID finds a task by ID
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update persists the title and description of a task
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a task and closes the gap it leaves in its column
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task domain.Task
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}

		return compactPositions(tx, domain.Task{}.TableName(), "column_id", task.ColumnID)
	})
}

// ReplaceColumnTasks stores every sequence in a single transaction: each
// listed task is assigned to the sequence's column at its slice index.
// Afterwards every touched column must hold exactly the listed tasks,
// otherwise nothing is written.
func (r *taskRepositoryImpl) ReplaceColumnTasks(ctx context.Context, sequences ...TaskSequence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seq := range sequences {
			var column domain.Column
			if err := tx.Select("id").Where("id = ?", seq.ColumnID).First(&column).Error; err != nil {
				return err
			}

			for i, task := range seq.Tasks {
				result := tx.Model(&domain.Task{}).
					Where("id = ?", task.ID).
					Updates(map[string]interface{}{
						"column_id": seq.ColumnID,
						"position":  i,
					})
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
			}
		}

		for _, seq := range sequences {
			var count int64
			if err := tx.Model(&domain.Task{}).Where("column_id = ?", seq.ColumnID).Count(&count).Error; err != nil {
				return err
			}
			if int(count) != len(seq.Tasks) {
				return ErrSequenceMismatch
			}
		}
		return nil
	})
}

// Count returns the number of stored tasks
func (r *taskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Task{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
