package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"task-track-tower/internal/dto"
	"task-track-tower/internal/response"
)

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateBoardFunc func(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	ListBoardsFunc  func(ctx context.Context) ([]dto.BoardResponse, error)
	UpdateBoardFunc func(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoardFunc func(ctx context.Context, boardID uuid.UUID) (*dto.DeleteResponse, error)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) ListBoards(ctx context.Context) ([]dto.BoardResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID uuid.UUID) (*dto.DeleteResponse, error) {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return nil, nil
}

// MockColumnService is a mock implementation of ColumnService
type MockColumnService struct {
	CreateColumnFunc      func(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	GetColumnsByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]dto.ColumnResponse, error)
	UpdateColumnFunc      func(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	DeleteColumnFunc      func(ctx context.Context, columnID uuid.UUID) (*dto.DeleteResponse, error)
	MoveColumnFunc        func(ctx context.Context, columnID uuid.UUID, req *dto.MoveColumnRequest) (*dto.MoveColumnResponse, error)
}

func (m *MockColumnService) CreateColumn(ctx context.Context, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	if m.CreateColumnFunc != nil {
		return m.CreateColumnFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockColumnService) GetColumnsByBoard(ctx context.Context, boardID uuid.UUID) ([]dto.ColumnResponse, error) {
	if m.GetColumnsByBoardFunc != nil {
		return m.GetColumnsByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockColumnService) UpdateColumn(ctx context.Context, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	if m.UpdateColumnFunc != nil {
		return m.UpdateColumnFunc(ctx, columnID, req)
	}
	return nil, nil
}

func (m *MockColumnService) DeleteColumn(ctx context.Context, columnID uuid.UUID) (*dto.DeleteResponse, error) {
	if m.DeleteColumnFunc != nil {
		return m.DeleteColumnFunc(ctx, columnID)
	}
	return nil, nil
}

func (m *MockColumnService) MoveColumn(ctx context.Context, columnID uuid.UUID, req *dto.MoveColumnRequest) (*dto.MoveColumnResponse, error) {
	if m.MoveColumnFunc != nil {
		return m.MoveColumnFunc(ctx, columnID, req)
	}
	return nil, nil
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateTaskFunc func(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	UpdateTaskFunc func(ctx context.Context, columnID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTaskFunc func(ctx context.Context, columnID, taskID uuid.UUID) (*dto.DeleteResponse, error)
	MoveTaskFunc   func(ctx context.Context, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.MoveTaskResponse, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, columnID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, columnID, req)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, columnID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, columnID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, columnID, taskID uuid.UUID) (*dto.DeleteResponse, error) {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, columnID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) MoveTask(ctx context.Context, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.MoveTaskResponse, error) {
	if m.MoveTaskFunc != nil {
		return m.MoveTaskFunc(ctx, taskID, req)
	}
	return nil, nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// envelope decodes a response body whose data payload is left raw
type envelope struct {
	Success bool                 `json:"success"`
	Data    json.RawMessage      `json:"data"`
	Error   response.ErrorDetail `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.True(t, env.Success, "expected success envelope, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}
