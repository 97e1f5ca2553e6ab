package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	IncidenciaVacaciones = "vacaciones"
	IncidenciaEnfermedad = "enfermedad"
	IncidenciaOtro       = "otro"
)

// Incidencia is an absence period during which a volunteer should not be
// scheduled.
type Incidencia struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	StartDate time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time      `gorm:"type:date;not null" json:"end_date"`
	Motivo    string         `gorm:"type:varchar(20);not null" json:"motivo"`
	Notes     string         `gorm:"type:varchar(500)" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
