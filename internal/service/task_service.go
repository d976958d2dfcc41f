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

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, columnID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, columnID, taskID uuid.UUID) (*dto.DeleteResponse, error)
	MoveTask(ctx context.Context, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.MoveTaskResponse, error)
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	columnRepo repository.ColumnRepository
	taskRepo   repository.TaskRepository
	locker     lock.Locker
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	columnRepo repository.ColumnRepository,
	taskRepo repository.TaskRepository,
	locker lock.Locker,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		columnRepo: columnRepo,
		taskRepo:   taskRepo,
		locker:     locker,
		metrics:    m,
		logger:     logger,
	}
}

// CreateTask appends a task to the end of a column
func (s *taskServiceImpl) CreateTask(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	title, err := validateTitle("Task", req.Title)
	if err != nil {
		return nil, err
	}

	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, column.BoardID)
	if err != nil {
		return nil, err
	}
	defer release()

	task := &domain.Task{
		ColumnID:    columnID,
		Title:       title,
		Description: req.Description,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, storeError(err, "Column not found", "Failed to create task")
	}

	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("column_id", columnID.String()),
		zap.Int("position", task.Position))

	resp := toTaskResponse(task)
	return &resp, nil
}

// UpdateTask changes the title and description of a task in the given column
func (s *taskServiceImpl) UpdateTask(ctx context.Context, columnID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	title, err := validateTitle("Task", req.Title)
	if err != nil {
		return nil, err
	}

	task, err := s.findTaskInColumn(ctx, columnID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = req.Description
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, storeError(err, "Task not found", "Failed to update task")
	}

	updated, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, storeError(err, "Task not found", "Failed to fetch task")
	}

	resp := toTaskResponse(updated)
	return &resp, nil
}

// DeleteTask removes a task from its column
func (s *taskServiceImpl) DeleteTask(ctx context.Context, columnID, taskID uuid.UUID) (*dto.DeleteResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, columnID)
	if err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, column.BoardID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := s.findTaskInColumn(ctx, columnID, taskID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return nil, storeError(err, "Task not found", "Failed to delete task")
	}

	s.logger.Info("Task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("column_id", columnID.String()))

	return &dto.DeleteResponse{ID: taskID}, nil
}

// MoveTask moves a task within its column or into another column.
//
// The source column must hold taskID at sourceIndex. destIndex is read
// against the source column with the task removed for same-column moves, and
// against the destination's current tasks otherwise. Both columns are
// validated before anything is written, and both sequences are stored in one
// transaction.
func (s *taskServiceImpl) MoveTask(ctx context.Context, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.MoveTaskResponse, error) {
	if req.SourceIndex == nil || req.DestIndex == nil {
		return nil, response.NewValidationError("sourceIndex and destIndex are required", "")
	}
	from, to := *req.SourceIndex, *req.DestIndex
	sameColumn := req.SourceColumnID == req.DestColumnID

	source, dest, err := s.loadMoveColumns(ctx, req.SourceColumnID, req.DestColumnID)
	if err != nil {
		return nil, err
	}

	release, err := lockBoards(ctx, s.locker, s.metrics, s.logger, source.BoardID, dest.BoardID)
	if err != nil {
		return nil, err
	}
	defer release()

	// reload under the lock so the indices are checked against committed state
	source, dest, err = s.loadMoveColumns(ctx, req.SourceColumnID, req.DestColumnID)
	if err != nil {
		return nil, err
	}

	if source.TaskIndex(taskID) < 0 {
		return nil, response.NewNotFoundError("Task not found in source column", "")
	}
	occupant, ok := source.TaskAt(from)
	if !ok || occupant.ID != taskID {
		return nil, response.NewInvalidIndexError("Task is not at sourceIndex, refresh and retry", "")
	}

	var sequences []repository.TaskSequence
	kind := metrics.MoveWithin
	if sameColumn {
		tasks, err := ordering.Reorder(source.Tasks, from, to)
		if err != nil {
			return nil, storeError(err, "Task not found", "Failed to move task")
		}
		source.Tasks = tasks
		sequences = []repository.TaskSequence{{ColumnID: source.ID, Tasks: tasks}}
	} else {
		kind = metrics.MoveAcross
		srcTasks, dstTasks, err := ordering.Transfer(source.Tasks, dest.Tasks, from, to, func(t domain.Task) domain.Task {
			t.ColumnID = dest.ID
			return t
		})
		if err != nil {
			return nil, storeError(err, "Task not found", "Failed to move task")
		}
		source.Tasks, dest.Tasks = srcTasks, dstTasks
		sequences = []repository.TaskSequence{
			{ColumnID: source.ID, Tasks: srcTasks},
			{ColumnID: dest.ID, Tasks: dstTasks},
		}
	}

	if err := s.taskRepo.ReplaceColumnTasks(ctx, sequences...); err != nil {
		s.logger.Error("Failed to persist task order",
			zap.String("task_id", taskID.String()),
			zap.String("source_column_id", source.ID.String()),
			zap.String("dest_column_id", dest.ID.String()),
			zap.Error(err))
		return nil, storeError(err, "Task not found", "Failed to move task")
	}

	if s.metrics != nil {
		s.metrics.RecordTaskMove(kind)
	}

	s.logger.Info("Task moved",
		zap.String("task_id", taskID.String()),
		zap.String("source_column_id", source.ID.String()),
		zap.String("dest_column_id", dest.ID.String()),
		zap.Int("source_index", from),
		zap.Int("dest_index", to),
		zap.String("kind", kind))

	columns := []*domain.Column{source}
	if !sameColumn {
		columns = append(columns, dest)
	}
	for _, c := range columns {
		for i := range c.Tasks {
			c.Tasks[i].Position = i
		}
	}

	return &dto.MoveTaskResponse{
		TaskID:         taskID,
		SourceColumnID: source.ID,
		DestColumnID:   dest.ID,
		SourceIndex:    from,
		DestIndex:      to,
		Columns:        toColumnResponses(columns),
	}, nil
}

// loadMoveColumns fetches the source and destination columns. They are the
// same pointer when both ids are equal.
func (s *taskServiceImpl) loadMoveColumns(ctx context.Context, sourceID, destID uuid.UUID) (*domain.Column, *domain.Column, error) {
	source, err := s.columnRepo.FindByID(ctx, sourceID)
	if err != nil {
		return nil, nil, storeError(err, "Source column not found", "Failed to fetch column")
	}
	if sourceID == destID {
		return source, source, nil
	}

	dest, err := s.columnRepo.FindByID(ctx, destID)
	if err != nil {
		return nil, nil, storeError(err, "Destination column not found", "Failed to fetch column")
	}
	return source, dest, nil
}

// findTaskInColumn loads a task and checks that it belongs to columnID
func (s *taskServiceImpl) findTaskInColumn(ctx context.Context, columnID, taskID uuid.UUID) (*domain.Task, error) {
	if _, err := s.columnRepo.FindByID(ctx, columnID); err != nil {
		return nil, storeError(err, "Column not found", "Failed to fetch column")
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, storeError(err, "Task not found", "Failed to fetch task")
	}
	if task.ColumnID != columnID {
		return nil, response.NewNotFoundError("Task not found in column", "")
	}
	return task, nil
}
