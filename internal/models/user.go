package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleVolunteer UserRole = "volunteer"
)

type User struct {
	ID             uint64          `gorm:"primarykey" json:"id"`
	UserName       string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"userName"`
	Nombre         string          `gorm:"type:varchar(255);not null" json:"nombre"`
	Email          string          `gorm:"type:varchar(255)" json:"email"`
	Phone          string          `gorm:"type:varchar(50)" json:"phone"`
	PasswordHash   string          `gorm:"type:varchar(255);not null" json:"-"`
	Role           UserRole        `gorm:"type:varchar(20);not null;default:'volunteer'" json:"role"`
	CongregationID uint64          `gorm:"not null;index" json:"congregation_id"`
	Active         bool            `gorm:"not null;default:true" json:"active"`
	Privileges     StringList      `gorm:"type:text" json:"privileges"`
	Availability   AvailabilityMap `gorm:"type:text" json:"availability"`
	Rules          RuleList        `gorm:"type:text" json:"rules"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Congregation Congregation `gorm:"foreignKey:CongregationID" json:"congregation,omitempty"`
	Incidencias  []Incidencia `gorm:"foreignKey:UserID" json:"-"`
}
