package handler

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workoutkit/tcx-backend-go/internal/models"
	"github.com/workoutkit/tcx-backend-go/internal/service"
	"github.com/workoutkit/tcx-backend-go/internal/tcx"
	"github.com/workoutkit/tcx-backend-go/pkg/response"
)

// WorkoutHandler handles HTTP requests for stored workouts
type WorkoutHandler struct {
	workoutService *service.WorkoutService
	maxUploadBytes int64
}

// NewWorkoutHandler creates a new workout handler
func NewWorkoutHandler(workoutService *service.WorkoutService, maxUploadBytes int64) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadWorkout handles POST /api/v1/workouts
func (h *WorkoutHandler) UploadWorkout(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing TCX file upload")
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		response.BadRequest(c, fmt.Sprintf("File exceeds upload limit of %d bytes", h.maxUploadBytes))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	rec, err := h.workoutService.Import(file.Filename, data)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, rec)
}

// ListWorkouts handles GET /api/v1/workouts
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var filter models.WorkoutFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.workoutService.List(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetWorkout handles GET /api/v1/workouts/:id
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	summary, err := h.workoutService.Summary(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, summary)
}

// DownloadWorkout handles GET /api/v1/workouts/:id/download
func (h *WorkoutHandler) DownloadWorkout(c *gin.Context) {
	rec, err := h.workoutService.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Filename))
	c.Data(200, "application/vnd.garmin.tcx+xml", rec.Raw)
}

// DeleteWorkout handles DELETE /api/v1/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// MergeWorkouts handles POST /api/v1/workouts/merge
func (h *WorkoutHandler) MergeWorkouts(c *gin.Context) {
	var req models.MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid merge request")
		return
	}
	if req.Kind != "" {
		if _, err := tcx.ParseMergeKind(req.Kind); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	rec, err := h.workoutService.Merge(req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, rec)
}

// ScaleWorkout handles POST /api/v1/workouts/:id/scale
func (h *WorkoutHandler) ScaleWorkout(c *gin.Context) {
	var req models.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid scale request")
		return
	}
	if req.Factor <= 0 {
		response.BadRequest(c, "Scale factor must be positive")
		return
	}

	rec, err := h.workoutService.Scale(c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, rec)
}

// ListOperations handles GET /api/v1/operations
func (h *WorkoutHandler) ListOperations(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	records, err := h.workoutService.Operations(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// writeError maps domain failures to HTTP status codes. Overlapping inputs
// are a conflict, malformed documents and bad policies are client errors.
func (h *WorkoutHandler) writeError(c *gin.Context, err error) {
	var overlapErr *tcx.OverlapError
	var lapCountErr *tcx.LapCountError
	var timestampErr *tcx.MalformedTimestampError
	var documentErr *tcx.MalformedDocumentError
	var readErr *tcx.ReadError

	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "Workout not found")
	case errors.As(err, &overlapErr):
		response.Conflict(c, err.Error())
	case errors.As(err, &lapCountErr),
		errors.As(err, &timestampErr),
		errors.As(err, &documentErr),
		errors.As(err, &readErr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
