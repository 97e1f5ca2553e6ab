package repository

import (
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"gorm.io/gorm"
)

// GormHistoryRepository is a GORM implementation of HistoryRepository
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &GormHistoryRepository{db: db}
}

// ListByUser returns a volunteer's records ordered by date ascending
func (r *GormHistoryRepository) ListByUser(userName string, fromDate *time.Time) ([]models.ParticipationRecord, error) {
	query := r.db.Where("user_name = ?", userName)
	if fromDate != nil {
		query = query.Where("date >= ?", *fromDate)
	}

	var records []models.ParticipationRecord
	if err := query.Order("date ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceWeek swaps the records for one week in a single transaction so
// history is never left transiently empty for the range.
func (r *GormHistoryRepository) ReplaceWeek(weekStart time.Time, records []models.ParticipationRecord) error {
	weekEnd := weekStart.AddDate(0, 0, 7)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date >= ? AND date < ?", weekStart, weekEnd).
			Delete(&models.ParticipationRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}
