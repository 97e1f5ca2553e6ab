package dto

import (
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/models"
)

// WeekDataDTO represents one week of the shift grid
type WeekDataDTO struct {
	WeekStart   string            `json:"weekStart"`
	Assignments map[string]string `json:"assignments"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

// ToWeekDataDTO converts a WeekSchedule model to WeekDataDTO
func ToWeekDataDTO(week models.WeekSchedule) WeekDataDTO {
	dto := WeekDataDTO{
		WeekStart:   week.WeekStart.Format(constants.DateLayout),
		Assignments: week.Assignments,
	}
	if week.ID != 0 {
		updatedAt := week.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

// ParticipationRecordDTO represents one history entry
type ParticipationRecordDTO struct {
	UserName   string `json:"userName"`
	Date       string `json:"date"`
	Day        string `json:"day"`
	Turno      string `json:"turno"`
	IndexValue int    `json:"indexValue"`
}

// HistoryResponse is the payload of getUserParticipationHistory.json
type HistoryResponse struct {
	Data  []ParticipationRecordDTO `json:"data"`
	Total int                      `json:"total"`
}

// ToHistoryResponse converts history records to the wire shape
func ToHistoryResponse(records []models.ParticipationRecord) HistoryResponse {
	data := make([]ParticipationRecordDTO, len(records))
	for i, rec := range records {
		data[i] = ParticipationRecordDTO{
			UserName:   rec.UserName,
			Date:       rec.Date.Format(constants.DateLayout),
			Day:        rec.Day,
			Turno:      rec.Turno,
			IndexValue: rec.IndexValue,
		}
	}
	return HistoryResponse{Data: data, Total: len(data)}
}
