package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ppam-app/ppam-scheduler/internal/dto"
	apierrors "github.com/ppam-app/ppam-scheduler/internal/errors"
	"github.com/ppam-app/ppam-scheduler/internal/services"
)

// CongregationHandler coordinates congregation administration endpoints.
type CongregationHandler struct {
	congService *services.CongregationService
}

// NewCongregationHandler creates a new CongregationHandler.
func NewCongregationHandler(congService *services.CongregationService) *CongregationHandler {
	return &CongregationHandler{
		congService: congService,
	}
}

// ListCongregations returns all congregations.
func (h *CongregationHandler) ListCongregations(c *gin.Context) {
	congregations, err := h.congService.ListCongregations()
	if err != nil {
		apierrors.InternalError(c, "Failed to list congregations")
		return
	}

	dtos := make([]dto.CongregationDTO, len(congregations))
	for i, congregation := range congregations {
		dtos[i] = dto.ToCongregationDTO(congregation, true)
	}

	c.JSON(http.StatusOK, gin.H{"congregations": dtos})
}

// CreateCongregation creates a congregation with a fresh access code.
func (h *CongregationHandler) CreateCongregation(c *gin.Context) {
	type CreateCongregationRequest struct {
		Name string `json:"name" binding:"required"`
		City string `json:"city"`
	}

	var req CreateCongregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	congregation, err := h.congService.CreateCongregation(req.Name, req.City)
	if err != nil {
		respondCongregationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCongregationDTO(*congregation, true))
}

// GetCongregation returns one congregation.
func (h *CongregationHandler) GetCongregation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	congregation, err := h.congService.GetCongregation(id)
	if err != nil {
		respondCongregationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCongregationDTO(*congregation, true))
}

// UpdateCongregation renames a congregation.
func (h *CongregationHandler) UpdateCongregation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateCongregationRequest struct {
		Name string `json:"name" binding:"required"`
		City string `json:"city"`
	}

	var req UpdateCongregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	congregation, err := h.congService.UpdateCongregation(id, req.Name, req.City)
	if err != nil {
		respondCongregationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCongregationDTO(*congregation, true))
}

// RegenerateAccessCode replaces the congregation's signup code.
func (h *CongregationHandler) RegenerateAccessCode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	congregation, err := h.congService.RegenerateAccessCode(id)
	if err != nil {
		respondCongregationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCongregationDTO(*congregation, true))
}

// DeleteCongregation removes a congregation.
func (h *CongregationHandler) DeleteCongregation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.congService.DeleteCongregation(id); err != nil {
		respondCongregationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Congregation deleted"})
}

func respondCongregationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCongregationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCongregationName):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
