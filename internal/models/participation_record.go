package models

import "time"

// ParticipationRecord is one confirmed assignment in the history log.
// Rows for a week are deleted and reinserted whenever that week of the
// schedule is saved; the schedule itself is the source of truth.
type ParticipationRecord struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	UserName   string    `gorm:"type:varchar(100);not null;index" json:"userName"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	Day        string    `gorm:"type:varchar(20);not null" json:"day"`
	Turno      string    `gorm:"type:varchar(20);not null" json:"turno"`
	IndexValue int       `gorm:"not null" json:"indexValue"`
	CreatedAt  time.Time `json:"created_at"`
}
