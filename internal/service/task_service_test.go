package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-track-tower/internal/domain"
	"task-track-tower/internal/dto"
	"task-track-tower/internal/metrics"
	"task-track-tower/internal/repository"
	"task-track-tower/internal/response"
)

func TestTaskService_CreateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	columnID := f.column(t, f.board(t, "Board"), "To Do")

	_, err := f.tasks.CreateTask(ctx, uuid.New(), &dto.CreateTaskRequest{Title: "Lost"})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)

	_, err = f.tasks.CreateTask(ctx, columnID, &dto.CreateTaskRequest{Title: ""})
	assertAppErrorCode(t, err, response.ErrCodeValidation)

	first, err := f.tasks.CreateTask(ctx, columnID, &dto.CreateTaskRequest{Title: "First", Description: "details"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "details", first.Description)
	assert.Equal(t, columnID, first.ColumnID)

	second, err := f.tasks.CreateTask(ctx, columnID, &dto.CreateTaskRequest{Title: "Second"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, "", second.Description)

	assert.Equal(t, []string{"First", "Second"}, f.titles(t, columnID))
}

func TestTaskService_UpdateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boardID := f.board(t, "Board")
	col := f.column(t, boardID, "Col")
	other := f.column(t, boardID, "Other")
	taskID := f.task(t, col, "Old")

	_, err := f.tasks.UpdateTask(ctx, col, taskID, &dto.UpdateTaskRequest{Title: " "})
	assertAppErrorCode(t, err, response.ErrCodeValidation)

	_, err = f.tasks.UpdateTask(ctx, uuid.New(), taskID, &dto.UpdateTaskRequest{Title: "x"})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)

	_, err = f.tasks.UpdateTask(ctx, other, taskID, &dto.UpdateTaskRequest{Title: "x"})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)

	_, err = f.tasks.UpdateTask(ctx, col, uuid.New(), &dto.UpdateTaskRequest{Title: "x"})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)

	got, err := f.tasks.UpdateTask(ctx, col, taskID, &dto.UpdateTaskRequest{Title: "New", Description: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "desc", got.Description)
}

func TestTaskService_DeleteTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boardID := f.board(t, "Board")
	col := f.column(t, boardID, "Col")
	other := f.column(t, boardID, "Other")
	t1 := f.task(t, col, "T1")
	f.task(t, col, "T2")

	_, err := f.tasks.DeleteTask(ctx, other, t1)
	assertAppErrorCode(t, err, response.ErrCodeNotFound)

	got, err := f.tasks.DeleteTask(ctx, col, t1)
	require.NoError(t, err)
	assert.Equal(t, t1, got.ID)
	assert.Equal(t, []string{"T2"}, f.titles(t, col))

	_, err = f.tasks.DeleteTask(ctx, col, t1)
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestTaskService_MoveTaskWithinColumn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	col := f.column(t, f.board(t, "Board"), "Col")
	a := f.task(t, col, "A")
	f.task(t, col, "B")
	f.task(t, col, "C")
	f.task(t, col, "D")

	got, err := f.tasks.MoveTask(ctx, a, &dto.MoveTaskRequest{
		SourceColumnID: col,
		DestColumnID:   col,
		SourceIndex:    intPtr(0),
		DestIndex:      intPtr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C", "A", "D"}, f.titles(t, col))
	require.Len(t, got.Columns, 1)
	assert.Equal(t, a, got.Columns[0].Tasks[2].ID)
	assert.Equal(t, 2, got.Columns[0].Tasks[2].Position)
	assert.Equal(t, float64(1), counterValue(t, f.metrics, metrics.MoveWithin))
}

func TestTaskService_MoveTaskAcrossColumns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boardID := f.board(t, "Board")
	src := f.column(t, boardID, "Source")
	dst := f.column(t, boardID, "Dest")
	t1 := f.task(t, src, "T1")
	f.task(t, src, "T2")
	f.task(t, dst, "T3")

	got, err := f.tasks.MoveTask(ctx, t1, &dto.MoveTaskRequest{
		SourceColumnID: src,
		DestColumnID:   dst,
		SourceIndex:    intPtr(0),
		DestIndex:      intPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"T2"}, f.titles(t, src))
	assert.Equal(t, []string{"T3", "T1"}, f.titles(t, dst))

	moved, err := f.taskRepo.FindByID(ctx, t1)
	require.NoError(t, err)
	assert.Equal(t, dst, moved.ColumnID)

	assert.Equal(t, src, got.SourceColumnID)
	assert.Equal(t, dst, got.DestColumnID)
	require.Len(t, got.Columns, 2)
	assert.Equal(t, dst, got.Columns[1].Tasks[1].ColumnID)
	assert.Equal(t, float64(1), counterValue(t, f.metrics, metrics.MoveAcross))
}

func TestTaskService_MoveTaskIntoEmptyColumn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	boardID := f.board(t, "Board")
	src := f.column(t, boardID, "Source")
	dst := f.column(t, boardID, "Empty")
	only := f.task(t, src, "Only")

	_, err := f.tasks.MoveTask(ctx, only, &dto.MoveTaskRequest{
		SourceColumnID: src,
		DestColumnID:   dst,
		SourceIndex:    intPtr(0),
		DestIndex:      intPtr(0),
	})
	require.NoError(t, err)
	assert.Empty(t, f.titles(t, src))
	assert.Equal(t, []string{"Only"}, f.titles(t, dst))
}

func TestTaskService_MoveTaskAcrossBoards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	src := f.column(t, f.board(t, "One"), "Source")
	dst := f.column(t, f.board(t, "Two"), "Dest")
	task := f.task(t, src, "Traveller")

	_, err := f.tasks.MoveTask(ctx, task, &dto.MoveTaskRequest{
		SourceColumnID: src,
		DestColumnID:   dst,
		SourceIndex:    intPtr(0),
		DestIndex:      intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Traveller"}, f.titles(t, dst))
}

func TestTaskService_MoveTaskRejectionsLeaveStateUnchanged(t *testing.T) {
	tests := []struct {
		name     string
		build    func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest)
		wantCode string
	}{
		{
			name: "source index points at another task",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return t1, &dto.MoveTaskRequest{SourceColumnID: src, DestColumnID: dst, SourceIndex: intPtr(1), DestIndex: intPtr(0)}
			},
			wantCode: response.ErrCodeInvalidIndex,
		},
		{
			name: "source index out of range",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return t1, &dto.MoveTaskRequest{SourceColumnID: src, DestColumnID: dst, SourceIndex: intPtr(5), DestIndex: intPtr(0)}
			},
			wantCode: response.ErrCodeInvalidIndex,
		},
		{
			name: "dest index past end of destination",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return t1, &dto.MoveTaskRequest{SourceColumnID: src, DestColumnID: dst, SourceIndex: intPtr(0), DestIndex: intPtr(2)}
			},
			wantCode: response.ErrCodeInvalidIndex,
		},
		{
			name: "dest index past end within column",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return t1, &dto.MoveTaskRequest{SourceColumnID: src, DestColumnID: src, SourceIndex: intPtr(0), DestIndex: intPtr(2)}
			},
			wantCode: response.ErrCodeInvalidIndex,
		},
		{
			name: "destination column does not exist",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return t1, &dto.MoveTaskRequest{SourceColumnID: src, DestColumnID: uuid.New(), SourceIndex: intPtr(0), DestIndex: intPtr(0)}
			},
			wantCode: response.ErrCodeNotFound,
		},
		{
			name: "source column does not exist",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return t1, &dto.MoveTaskRequest{SourceColumnID: uuid.New(), DestColumnID: dst, SourceIndex: intPtr(0), DestIndex: intPtr(0)}
			},
			wantCode: response.ErrCodeNotFound,
		},
		{
			name: "task not in source column",
			build: func(src, dst, t1, t2 uuid.UUID) (uuid.UUID, *dto.MoveTaskRequest) {
				return uuid.New(), &dto.MoveTaskRequest{SourceColumnID: src, DestColumnID: dst, SourceIndex: intPtr(0), DestIndex: intPtr(0)}
			},
			wantCode: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			boardID := f.board(t, "Board")
			src := f.column(t, boardID, "Source")
			dst := f.column(t, boardID, "Dest")
			t1 := f.task(t, src, "T1")
			t2 := f.task(t, src, "T2")
			f.task(t, dst, "T3")

			taskID, req := tt.build(src, dst, t1, t2)
			_, err := f.tasks.MoveTask(context.Background(), taskID, req)

			assertAppErrorCode(t, err, tt.wantCode)
			assert.Equal(t, []string{"T1", "T2"}, f.titles(t, src))
			assert.Equal(t, []string{"T3"}, f.titles(t, dst))
		})
	}
}

func TestTaskService_MoveTaskLocksBothBoardsInOrder(t *testing.T) {
	srcBoard, dstBoard := uuid.New(), uuid.New()
	src := &domain.Column{BaseModel: domain.BaseModel{ID: uuid.New()}, BoardID: srcBoard}
	dst := &domain.Column{BaseModel: domain.BaseModel{ID: uuid.New()}, BoardID: dstBoard}
	task := domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}, ColumnID: src.ID}
	src.Tasks = []domain.Task{task}

	var lockedKeys []string
	released := false
	columnRepo := &MockColumnRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
			switch id {
			case src.ID:
				c := *src
				c.Tasks = append([]domain.Task(nil), src.Tasks...)
				return &c, nil
			case dst.ID:
				c := *dst
				return &c, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	var stored []repository.TaskSequence
	taskRepo := &MockTaskRepository{
		ReplaceColumnTasksFunc: func(ctx context.Context, sequences ...repository.TaskSequence) error {
			stored = sequences
			return nil
		},
	}
	locker := &MockLocker{
		AcquireFunc: func(ctx context.Context, keys ...string) (func(), error) {
			lockedKeys = keys
			return func() { released = true }, nil
		},
	}

	svc := NewTaskService(columnRepo, taskRepo, locker, nil, zap.NewNop())
	_, err := svc.MoveTask(context.Background(), task.ID, &dto.MoveTaskRequest{
		SourceColumnID: src.ID,
		DestColumnID:   dst.ID,
		SourceIndex:    intPtr(0),
		DestIndex:      intPtr(0),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{boardLockKey(srcBoard), boardLockKey(dstBoard)}, lockedKeys)
	assert.True(t, released)
	require.Len(t, stored, 2)
	assert.Empty(t, stored[0].Tasks)
	require.Len(t, stored[1].Tasks, 1)
	assert.Equal(t, dst.ID, stored[1].Tasks[0].ColumnID)
}

func TestTaskService_MoveTaskStoreFailure(t *testing.T) {
	col := &domain.Column{BaseModel: domain.BaseModel{ID: uuid.New()}, BoardID: uuid.New()}
	a := domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}, ColumnID: col.ID}
	b := domain.Task{BaseModel: domain.BaseModel{ID: uuid.New()}, ColumnID: col.ID}
	col.Tasks = []domain.Task{a, b}

	svc := NewTaskService(
		&MockColumnRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
				c := *col
				c.Tasks = append([]domain.Task(nil), col.Tasks...)
				return &c, nil
			},
		},
		&MockTaskRepository{
			ReplaceColumnTasksFunc: func(ctx context.Context, sequences ...repository.TaskSequence) error {
				return errors.New("deadline exceeded")
			},
		},
		&MockLocker{}, nil, zap.NewNop(),
	)

	_, err := svc.MoveTask(context.Background(), a.ID, &dto.MoveTaskRequest{
		SourceColumnID: col.ID,
		DestColumnID:   col.ID,
		SourceIndex:    intPtr(0),
		DestIndex:      intPtr(1),
	})
	assertAppErrorCode(t, err, response.ErrCodeStoreFailure)
}

func counterValue(t *testing.T, m *metrics.Metrics, kind string) float64 {
	t.Helper()
	return promtestutil.ToFloat64(m.TaskMovesTotal.WithLabelValues(kind))
}
