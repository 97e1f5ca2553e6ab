package participation

import "time"

// Status is the tri-state indicator shown next to a volunteer in the
// schedule grid.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusBlocked Status = "blocked"
)

// Icon returns the grid glyph for the status.
func (s Status) Icon() string {
	switch s {
	case StatusBlocked:
		return "🚫"
	case StatusWarning:
		return "⚠️"
	default:
		return "✅"
	}
}

// StatusOf reduces a validation outcome to its indicator. A volunteer
// with no rules is always ok.
func StatusOf(rules []Rule, selectedDate time.Time, history []Record) Status {
	if len(rules) == 0 {
		return StatusOK
	}
	return StatusForResult(Validate(rules, selectedDate, history))
}

// StatusForResult maps an already-computed result to its indicator.
func StatusForResult(result Result) Status {
	if !result.CanParticipate {
		return StatusBlocked
	}
	if len(result.Warnings) > 0 {
		return StatusWarning
	}
	return StatusOK
}
