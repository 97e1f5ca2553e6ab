package dto

import "github.com/ppam-app/ppam-scheduler/internal/participation"

// ValidationResponse is the payload of validateUserParticipation.json.
// Reason carries the first restriction, warningMessage the first
// advisory note.
type ValidationResponse struct {
	CanParticipate     bool                 `json:"canParticipate"`
	Status             participation.Status `json:"status"`
	Icon               string               `json:"icon"`
	Reason             string               `json:"reason,omitempty"`
	WarningMessage     string               `json:"warningMessage,omitempty"`
	ParticipationCount *int                 `json:"participationCount,omitempty"`
	MaxAllowed         *int                 `json:"maxAllowed,omitempty"`
}

// ToValidationResponse converts a validator result to the wire shape
func ToValidationResponse(result participation.Result) ValidationResponse {
	status := participation.StatusForResult(result)

	resp := ValidationResponse{
		CanParticipate:     result.CanParticipate,
		Status:             status,
		Icon:               status.Icon(),
		ParticipationCount: result.ParticipationCount,
		MaxAllowed:         result.MaxAllowed,
	}
	if len(result.Restrictions) > 0 {
		resp.Reason = result.Restrictions[0]
	}
	if len(result.Warnings) > 0 {
		resp.WarningMessage = result.Warnings[0]
	}
	return resp
}
