package dto

import (
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/utils"
)

// UserDTO represents a volunteer in API responses
type UserDTO struct {
	ID             uint64               `json:"id"`
	UserName       string               `json:"userName"`
	Nombre         string               `json:"nombre"`
	Email          string               `json:"email,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	Role           models.UserRole      `json:"role"`
	CongregationID uint64               `json:"congregation_id"`
	Active         bool                 `json:"active"`
	Privileges     []string             `json:"privileges,omitempty"`
	Availability   map[string][]string  `json:"availability,omitempty"`
	Rules          []participation.Rule `json:"rules,omitempty"`
	Congregation   *CongregationDTO     `json:"congregation,omitempty"`
}

// UserListResponse represents a paginated list of volunteers
type UserListResponse struct {
	Users      []UserDTO                `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:             user.ID,
		UserName:       user.UserName,
		Nombre:         user.Nombre,
		Email:          user.Email,
		Phone:          user.Phone,
		Role:           user.Role,
		CongregationID: user.CongregationID,
		Active:         user.Active,
		Privileges:     user.Privileges,
		Availability:   user.Availability,
		Rules:          user.Rules,
	}

	if user.Congregation.ID != 0 {
		congregation := ToCongregationDTO(user.Congregation, false)
		dto.Congregation = &congregation
	}

	return dto
}

// ToUserListResponse converts a slice of users to UserListResponse
func ToUserListResponse(users []models.User, page, limit int, total int64) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}

	return UserListResponse{
		Users: items,
		Pagination: utils.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}
