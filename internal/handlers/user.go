package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ppam-app/ppam-scheduler/internal/dto"
	apierrors "github.com/ppam-app/ppam-scheduler/internal/errors"
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"github.com/ppam-app/ppam-scheduler/internal/services"
	"github.com/ppam-app/ppam-scheduler/internal/utils"
)

// UserHandler coordinates volunteer administration endpoints.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns volunteers with optional filters.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.UserFilter{
		Pagination: params,
	}

	if raw := c.Query("congregation_id"); raw != "" {
		congregationID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid congregation_id")
			return
		}
		filter.CongregationID = &congregationID
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid active flag")
			return
		}
		filter.Active = &active
	}
	if privilege := c.Query("privilege"); privilege != "" {
		filter.Privilege = &privilege
	}

	users, total, err := h.userService.ListUsers(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params.Page, params.Limit, total))
}

// GetUser returns one volunteer.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser creates a volunteer on behalf of an administrator.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		UserName       string          `json:"userName" binding:"required,min=3,max=50"`
		Nombre         string          `json:"nombre" binding:"required"`
		Email          string          `json:"email" binding:"omitempty,email"`
		Phone          string          `json:"phone"`
		Password       string          `json:"password" binding:"required"`
		Role           models.UserRole `json:"role" binding:"omitempty,oneof=admin volunteer"`
		CongregationID uint64          `json:"congregation_id" binding:"required"`
		Privileges     []string        `json:"privileges"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		UserName:       req.UserName,
		Nombre:         req.Nombre,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		Role:           req.Role,
		CongregationID: req.CongregationID,
		Privileges:     req.Privileges,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial edit to a volunteer.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Nombre     *string          `json:"nombre"`
		Email      *string          `json:"email"`
		Phone      *string          `json:"phone"`
		Role       *models.UserRole `json:"role" binding:"omitempty,oneof=admin volunteer"`
		Active     *bool            `json:"active"`
		Privileges *[]string        `json:"privileges"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(userID, services.UpdateUserInput{
		Nombre:     req.Nombre,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Active:     req.Active,
		Privileges: req.Privileges,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ReplaceRules replaces a volunteer's participation rules wholesale.
func (h *UserHandler) ReplaceRules(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type ReplaceRulesRequest struct {
		Rules []participation.Rule `json:"rules"`
	}

	var req ReplaceRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.ReplaceRules(userID, req.Rules)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateAvailability replaces a volunteer's weekly availability map.
func (h *UserHandler) UpdateAvailability(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateAvailabilityRequest struct {
		Availability map[string][]string `json:"availability" binding:"required"`
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateAvailability(userID, models.AvailabilityMap(req.Availability))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser soft deletes a volunteer.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUserNameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrUnknownRuleType),
		errors.Is(err, services.ErrInvalidRuleValue),
		errors.Is(err, services.ErrUnknownDay):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
