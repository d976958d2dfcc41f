package service

import (
	"context"

	"github.com/google/uuid"

	"task-track-tower/internal/domain"
	"task-track-tower/internal/repository"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc              func(ctx context.Context, board *domain.Board) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithColumnsFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAllFunc             func(ctx context.Context) ([]*domain.Board, error)
	UpdateFunc              func(ctx context.Context, board *domain.Board) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByIDWithColumns(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDWithColumnsFunc != nil {
		return m.FindByIDWithColumnsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockColumnRepository is a mock implementation of ColumnRepository
type MockColumnRepository struct {
	CreateFunc                  func(ctx context.Context, column *domain.Column) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Column, error)
	FindByBoardIDFunc           func(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error)
	UpdateFunc                  func(ctx context.Context, column *domain.Column) error
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error
	ReplaceBoardColumnOrderFunc func(ctx context.Context, boardID uuid.UUID, columnIDs []uuid.UUID) error
	CountFunc                   func(ctx context.Context) (int64, error)
}

func (m *MockColumnRepository) Create(ctx context.Context, column *domain.Column) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockColumnRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Column, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockColumnRepository) Update(ctx context.Context, column *domain.Column) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, column)
	}
	return nil
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockColumnRepository) ReplaceBoardColumnOrder(ctx context.Context, boardID uuid.UUID, columnIDs []uuid.UUID) error {
	if m.ReplaceBoardColumnOrderFunc != nil {
		return m.ReplaceBoardColumnOrderFunc(ctx, boardID, columnIDs)
	}
	return nil
}

func (m *MockColumnRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc             func(ctx context.Context, task *domain.Task) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFunc             func(ctx context.Context, task *domain.Task) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	ReplaceColumnTasksFunc func(ctx context.Context, sequences ...repository.TaskSequence) error
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) ReplaceColumnTasks(ctx context.Context, sequences ...repository.TaskSequence) error {
	if m.ReplaceColumnTasksFunc != nil {
		return m.ReplaceColumnTasksFunc(ctx, sequences...)
	}
	return nil
}

func (m *MockTaskRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockLocker is a mock implementation of lock.Locker
type MockLocker struct {
	AcquireFunc func(ctx context.Context, keys ...string) (func(), error)
}

func (m *MockLocker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, keys...)
	}
	return func() {}, nil
}
