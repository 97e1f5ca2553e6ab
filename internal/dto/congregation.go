package dto

import "github.com/ppam-app/ppam-scheduler/internal/models"

// CongregationDTO represents a congregation in API responses. The
// access code is only included for administrators.
type CongregationDTO struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	AccessCode string `json:"access_code,omitempty"`
}

// ToCongregationDTO converts a Congregation model to CongregationDTO
func ToCongregationDTO(congregation models.Congregation, includeAccessCode bool) CongregationDTO {
	dto := CongregationDTO{
		ID:   congregation.ID,
		Name: congregation.Name,
		City: congregation.City,
	}
	if includeAccessCode {
		dto.AccessCode = congregation.AccessCode
	}
	return dto
}
