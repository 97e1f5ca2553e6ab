package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/dto"
	apierrors "github.com/ppam-app/ppam-scheduler/internal/errors"
	"github.com/ppam-app/ppam-scheduler/internal/middleware"
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/services"
)

// ScheduleHandler serves the weekly shift grid.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	saveQueue       *services.SaveQueue
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *services.ScheduleService, saveQueue *services.SaveQueue) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		saveQueue:       saveQueue,
	}
}

// GetWeekData returns the assignments for one week.
func (h *ScheduleHandler) GetWeekData(c *gin.Context) {
	raw := c.Query("weekStart")
	if raw == "" {
		apierrors.BadRequest(c, "weekStart is required")
		return
	}

	weekStart, err := time.Parse(constants.DateLayout, raw)
	if err != nil {
		apierrors.BadRequest(c, "Invalid weekStart, expected YYYY-MM-DD")
		return
	}

	week, err := h.scheduleService.GetWeek(weekStart)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch week")
		return
	}

	c.JSON(http.StatusOK, dto.ToWeekDataDTO(*week))
}

// SaveWeekData overwrites one week of the grid. Saves are funneled
// through the coalescing queue so rapid edits collapse into one write.
func (h *ScheduleHandler) SaveWeekData(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SaveWeekRequest struct {
		WeekStart   string            `json:"weekStart" binding:"required"`
		Assignments map[string]string `json:"assignments" binding:"required"`
	}

	var req SaveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	weekStart, err := time.Parse(constants.DateLayout, req.WeekStart)
	if err != nil {
		apierrors.BadRequest(c, "Invalid weekStart, expected YYYY-MM-DD")
		return
	}

	err = h.saveQueue.Enqueue(c.Request.Context(), services.SaveWeekInput{
		WeekStart:   weekStart,
		Assignments: models.AssignmentMap(req.Assignments),
		UpdatedBy:   userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidWeekKey) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to save week")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Week saved"})
}
