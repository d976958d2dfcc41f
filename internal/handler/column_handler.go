package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-track-tower/internal/dto"
	"task-track-tower/internal/response"
	"task-track-tower/internal/service"
)

type ColumnHandler struct {
	columnService service.ColumnService
}

func NewColumnHandler(columnService service.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

// CreateColumn godoc
// @Summary      Append a column to a board
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateColumnRequest true "Column"
// @Success      201 {object} response.SuccessResponse{data=dto.ColumnResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns [post]
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, column)
}

// UpdateColumn godoc
// @Summary      Rename a column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.UpdateColumnRequest true "Column"
// @Success      200 {object} response.SuccessResponse{data=dto.ColumnResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId} [put]
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	column, err := h.columnService.UpdateColumn(c.Request.Context(), columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// DeleteColumn godoc
// @Summary      Delete a column and its tasks
// @Tags         columns
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DeleteResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /columns/{columnId} [delete]
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	deleted, err := h.columnService.DeleteColumn(c.Request.Context(), columnID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, deleted)
}

// MoveColumn godoc
// @Summary      Move a column within its board
// @Description  destIndex is applied after the column is removed from its current position
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.MoveColumnRequest true "Move"
// @Success      200 {object} response.SuccessResponse{data=dto.MoveColumnResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "stale or out-of-range index"
// @Router       /columns/{columnId}/move [post]
func (h *ColumnHandler) MoveColumn(c *gin.Context) {
	columnID, ok := parseIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.MoveColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "sourceIndex and destIndex are required")
		return
	}

	moved, err := h.columnService.MoveColumn(c.Request.Context(), columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, moved)
}
