package models

import "time"

// WeekSchedule holds one Monday-aligned week of the shift grid as a flat
// assignment map keyed "{day}-{turno}-{index}". The record is
// overwritten in place on every save of that week.
type WeekSchedule struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	WeekStart   time.Time     `gorm:"type:date;uniqueIndex;not null" json:"weekStart"`
	Assignments AssignmentMap `gorm:"type:text" json:"assignments"`
	UpdatedBy   uint64        `json:"updated_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
