package participation

import (
	"encoding/json"
	"fmt"
	"time"
)

// RuleType identifies one of the supported participation constraints.
type RuleType string

const (
	RuleMaxPerMonth        RuleType = "max_per_month"
	RuleMaxPerWeek         RuleType = "max_per_week"
	RuleSpecificWeeks      RuleType = "specific_weeks"
	RuleAlternatingWeeks   RuleType = "alternating_weeks"
	RuleWeeklyAvailability RuleType = "weekly_availability"
)

// Rule is a declarative constraint on how often or when a volunteer may
// be assigned. Value carries the numeric limit for the max_per_* kinds,
// Weeks the allowed week-of-month numbers (1-5) for specific_weeks.
type Rule struct {
	Type        RuleType
	Value       int
	Weeks       []int
	Description string
}

// ruleJSON matches the stored shape {type, value, description} where
// value is either a number or a list of week numbers.
type ruleJSON struct {
	Type        RuleType        `json:"type"`
	Value       json.RawMessage `json:"value,omitempty"`
	Description string          `json:"description,omitempty"`
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	var raw ruleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Type = raw.Type
	r.Description = raw.Description
	r.Value = 0
	r.Weeks = nil

	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}
	var n int
	if err := json.Unmarshal(raw.Value, &n); err == nil {
		r.Value = n
		return nil
	}
	var weeks []int
	if err := json.Unmarshal(raw.Value, &weeks); err != nil {
		return fmt.Errorf("rule %q: invalid value %s", r.Type, raw.Value)
	}
	r.Weeks = weeks
	return nil
}

func (r Rule) MarshalJSON() ([]byte, error) {
	raw := ruleJSON{Type: r.Type, Description: r.Description}
	if r.Type == RuleSpecificWeeks {
		weeks := r.Weeks
		if weeks == nil {
			weeks = []int{}
		}
		b, err := json.Marshal(weeks)
		if err != nil {
			return nil, err
		}
		raw.Value = b
	} else if r.Value != 0 {
		b, err := json.Marshal(r.Value)
		if err != nil {
			return nil, err
		}
		raw.Value = b
	}
	return json.Marshal(raw)
}

// Record is one confirmed assignment from the participation history log.
type Record struct {
	UserName   string    `json:"userName"`
	Date       time.Time `json:"date"`
	Day        string    `json:"day"`
	Turno      string    `json:"turno"`
	IndexValue int       `json:"indexValue"`
}
