package dto

import (
	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/models"
)

// IncidenciaDTO represents an absence record in API responses
type IncidenciaDTO struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Motivo    string `json:"motivo"`
	Notes     string `json:"notes,omitempty"`
}

// ToIncidenciaDTO converts an Incidencia model to IncidenciaDTO
func ToIncidenciaDTO(incidencia models.Incidencia) IncidenciaDTO {
	return IncidenciaDTO{
		ID:        incidencia.ID,
		UserID:    incidencia.UserID,
		StartDate: incidencia.StartDate.Format(constants.DateLayout),
		EndDate:   incidencia.EndDate.Format(constants.DateLayout),
		Motivo:    incidencia.Motivo,
		Notes:     incidencia.Notes,
	}
}

// ToIncidenciaDTOs converts a slice of absences
func ToIncidenciaDTOs(incidencias []models.Incidencia) []IncidenciaDTO {
	dtos := make([]IncidenciaDTO, len(incidencias))
	for i, incidencia := range incidencias {
		dtos[i] = ToIncidenciaDTO(incidencia)
	}
	return dtos
}
