package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/dto"
	apierrors "github.com/ppam-app/ppam-scheduler/internal/errors"
	"github.com/ppam-app/ppam-scheduler/internal/services"
)

// IncidenciaHandler coordinates absence record endpoints.
type IncidenciaHandler struct {
	incidenciaService *services.IncidenciaService
}

// NewIncidenciaHandler creates a new IncidenciaHandler.
func NewIncidenciaHandler(incidenciaService *services.IncidenciaService) *IncidenciaHandler {
	return &IncidenciaHandler{
		incidenciaService: incidenciaService,
	}
}

// ListIncidencias returns absences for a user, or the ones active on a date.
func (h *IncidenciaHandler) ListIncidencias(c *gin.Context) {
	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id")
			return
		}
		incidencias, err := h.incidenciaService.ListByUser(userID)
		if err != nil {
			apierrors.InternalError(c, "Failed to list incidencias")
			return
		}
		c.JSON(http.StatusOK, gin.H{"incidencias": dto.ToIncidenciaDTOs(incidencias)})
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	incidencias, err := h.incidenciaService.ListActiveOn(date)
	if err != nil {
		apierrors.InternalError(c, "Failed to list incidencias")
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidencias": dto.ToIncidenciaDTOs(incidencias)})
}

// CreateIncidencia records an absence period.
func (h *IncidenciaHandler) CreateIncidencia(c *gin.Context) {
	type CreateIncidenciaRequest struct {
		UserID    uint64 `json:"user_id" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
		Motivo    string `json:"motivo" binding:"required,oneof=vacaciones enfermedad otro"`
		Notes     string `json:"notes"`
	}

	var req CreateIncidenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse(constants.DateLayout, req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(constants.DateLayout, req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	incidencia, err := h.incidenciaService.CreateIncidencia(services.CreateIncidenciaInput{
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Motivo:    req.Motivo,
		Notes:     req.Notes,
	})
	if err != nil {
		respondIncidenciaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncidenciaDTO(*incidencia))
}

// DeleteIncidencia removes an absence record.
func (h *IncidenciaHandler) DeleteIncidencia(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.incidenciaService.DeleteIncidencia(id); err != nil {
		respondIncidenciaError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Incidencia deleted"})
}

func respondIncidenciaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIncidenciaNotFound), errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidDateRange), errors.Is(err, services.ErrInvalidIncidenciaMotivo):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
