package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-track-tower/internal/dto"
	"task-track-tower/internal/lock"
	"task-track-tower/internal/metrics"
	"task-track-tower/internal/repository"
	"task-track-tower/internal/response"
	"task-track-tower/internal/testutil"
)

// fixture wires the three services to one SQLite database
type fixture struct {
	db         *gorm.DB
	metrics    *metrics.Metrics
	boardRepo  repository.BoardRepository
	columnRepo repository.ColumnRepository
	taskRepo   repository.TaskRepository
	boards     BoardService
	columns    ColumnService
	tasks      TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
	locker := lock.NewMemoryLocker(time.Second)
	logger := zap.NewNop()

	f := &fixture{
		db:         db,
		metrics:    m,
		boardRepo:  repository.NewBoardRepository(db),
		columnRepo: repository.NewColumnRepository(db),
		taskRepo:   repository.NewTaskRepository(db),
	}
	f.boards = NewBoardService(f.boardRepo, locker, m, logger)
	f.columns = NewColumnService(f.boardRepo, f.columnRepo, locker, m, logger)
	f.tasks = NewTaskService(f.columnRepo, f.taskRepo, locker, m, logger)
	return f
}

func (f *fixture) board(t *testing.T, title string) uuid.UUID {
	t.Helper()
	b, err := f.boards.CreateBoard(context.Background(), &dto.CreateBoardRequest{Title: title})
	require.NoError(t, err)
	return b.ID
}

func (f *fixture) column(t *testing.T, boardID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	c, err := f.columns.CreateColumn(context.Background(), &dto.CreateColumnRequest{BoardID: boardID, Title: title})
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) task(t *testing.T, columnID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(), columnID, &dto.CreateTaskRequest{Title: title})
	require.NoError(t, err)
	return task.ID
}

// titles returns the task titles of a column in stored order
func (f *fixture) titles(t *testing.T, columnID uuid.UUID) []string {
	t.Helper()
	column, err := f.columnRepo.FindByID(context.Background(), columnID)
	require.NoError(t, err)
	out := make([]string, len(column.Tasks))
	for i, task := range column.Tasks {
		require.Equal(t, i, task.Position, "positions must be contiguous")
		out[i] = task.Title
	}
	return out
}

func intPtr(v int) *int {
	return &v
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected *response.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code, appErr.Message)
}
