package repository

import (
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWeekRepository is a GORM implementation of WeekRepository
type GormWeekRepository struct {
	db *gorm.DB
}

// NewWeekRepository creates a new WeekRepository
func NewWeekRepository(db *gorm.DB) WeekRepository {
	return &GormWeekRepository{db: db}
}

// FindByWeekStart finds the schedule record for a week
func (r *GormWeekRepository) FindByWeekStart(weekStart time.Time) (*models.WeekSchedule, error) {
	var week models.WeekSchedule
	if err := r.db.Where("week_start = ?", weekStart).First(&week).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

// Upsert writes the week record, overwriting assignments in place
func (r *GormWeekRepository) Upsert(week *models.WeekSchedule) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "week_start"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"assignments", "updated_by", "updated_at",
			}),
		}).
		Create(week).Error
}
