package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/dto"
	apierrors "github.com/ppam-app/ppam-scheduler/internal/errors"
	"github.com/ppam-app/ppam-scheduler/internal/services"
)

// ValidationHandler serves the participation-rule validation endpoints.
type ValidationHandler struct {
	validationService *services.ValidationService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(validationService *services.ValidationService) *ValidationHandler {
	return &ValidationHandler{
		validationService: validationService,
	}
}

// ValidateUserParticipation checks whether a volunteer may be assigned
// on the selected date.
func (h *ValidationHandler) ValidateUserParticipation(c *gin.Context) {
	type ValidateRequest struct {
		UserName     string `json:"userName" binding:"required"`
		SelectedDate string `json:"selectedDate" binding:"required"`
	}

	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "userName and selectedDate are required")
		return
	}

	selectedDate, err := time.Parse(constants.DateLayout, req.SelectedDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid selectedDate, expected YYYY-MM-DD")
		return
	}

	result, err := h.validationService.ValidateParticipation(req.UserName, selectedDate)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToValidationResponse(result))
}

// GetUserParticipationHistory returns a volunteer's history log.
func (h *ValidationHandler) GetUserParticipationHistory(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		apierrors.BadRequest(c, "userName is required")
		return
	}

	var fromDate *time.Time
	if raw := c.Query("fromDate"); raw != "" {
		parsed, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid fromDate, expected YYYY-MM-DD")
			return
		}
		fromDate = &parsed
	}

	records, err := h.validationService.GetHistory(userName, fromDate)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch history")
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(records))
}
