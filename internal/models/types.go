package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/ppam-app/ppam-scheduler/internal/participation"
)

// Rule sets, availability maps and week assignments are document-shaped
// and always read/written wholesale, so they live in JSON text columns
// rather than join tables. Each type implements the GORM Scanner/Valuer
// pair.

func scanJSON(src interface{}, dst interface{}, name string) error {
	if src == nil {
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("%s.Scan: unsupported type %T", name, src)
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}

// StringList stores a list of strings (privilege tags) as JSON.
type StringList []string

func (l *StringList) Scan(src interface{}) error { return scanJSON(src, l, "StringList") }

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// AvailabilityMap maps a day name to the turno codes a volunteer offers.
type AvailabilityMap map[string][]string

func (m *AvailabilityMap) Scan(src interface{}) error { return scanJSON(src, m, "AvailabilityMap") }

func (m AvailabilityMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

// AssignmentMap maps a week key "{day}-{turno}-{index}" to the assigned
// volunteer's userName.
type AssignmentMap map[string]string

func (m *AssignmentMap) Scan(src interface{}) error { return scanJSON(src, m, "AssignmentMap") }

func (m AssignmentMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

// RuleList stores a volunteer's participation rules as JSON. Rules are
// replaced wholesale on edit.
type RuleList []participation.Rule

func (l *RuleList) Scan(src interface{}) error { return scanJSON(src, l, "RuleList") }

func (l RuleList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}
