package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-track-tower/internal/dto"
	"task-track-tower/internal/response"
	"task-track-tower/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask godoc
// @Summary      Append a task to a column
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.CreateTaskRequest true "Task"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "Task"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId", "column")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), columnID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DeleteResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId", "column")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTask(c.Request.Context(), columnID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, deleted)
}

// MoveTask godoc
// @Summary      Move a task within a column or to another column
// @Description  sourceIndex must hold the task. For same-column moves destIndex is applied after removal.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.MoveTaskRequest true "Move"
// @Success      200 {object} response.SuccessResponse{data=dto.MoveTaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "stale or out-of-range index"
// @Failure      503 {object} response.ErrorResponse "board busy or store unavailable"
// @Router       /tasks/{taskId}/move [post]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "sourceColumnId, destColumnId, sourceIndex and destIndex are required")
		return
	}

	moved, err := h.taskService.MoveTask(c.Request.Context(), taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, moved)
}
