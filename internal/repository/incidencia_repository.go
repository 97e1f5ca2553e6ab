package repository

import (
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"gorm.io/gorm"
)

// GormIncidenciaRepository is a GORM implementation of IncidenciaRepository
type GormIncidenciaRepository struct {
	db *gorm.DB
}

// NewIncidenciaRepository creates a new IncidenciaRepository
func NewIncidenciaRepository(db *gorm.DB) IncidenciaRepository {
	return &GormIncidenciaRepository{db: db}
}

// Create creates a new absence record
func (r *GormIncidenciaRepository) Create(incidencia *models.Incidencia) error {
	return r.db.Create(incidencia).Error
}

// FindByID finds an absence record by ID
func (r *GormIncidenciaRepository) FindByID(id uint64) (*models.Incidencia, error) {
	var incidencia models.Incidencia
	if err := r.db.First(&incidencia, id).Error; err != nil {
		return nil, err
	}
	return &incidencia, nil
}

// ListByUser returns a volunteer's absence records, newest first
func (r *GormIncidenciaRepository) ListByUser(userID uint64) ([]models.Incidencia, error) {
	var incidencias []models.Incidencia
	if err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&incidencias).Error; err != nil {
		return nil, err
	}
	return incidencias, nil
}

// ListActiveOn returns absences whose range covers the given date
func (r *GormIncidenciaRepository) ListActiveOn(date time.Time) ([]models.Incidencia, error) {
	var incidencias []models.Incidencia
	if err := r.db.Preload("User").
		Where("start_date <= ? AND end_date >= ?", date, date).
		Find(&incidencias).Error; err != nil {
		return nil, err
	}
	return incidencias, nil
}

// Delete soft deletes an absence record
func (r *GormIncidenciaRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Incidencia{}, id).Error
}
