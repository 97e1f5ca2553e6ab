package models

import (
	"time"

	"gorm.io/gorm"
)

type Congregation struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	City       string         `gorm:"type:varchar(255)" json:"city"`
	AccessCode string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"access_code"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Users []User `gorm:"foreignKey:CongregationID" json:"users,omitempty"`
}
