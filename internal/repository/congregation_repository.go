package repository

import (
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"gorm.io/gorm"
)

// GormCongregationRepository is a GORM implementation of CongregationRepository
type GormCongregationRepository struct {
	db *gorm.DB
}

// NewCongregationRepository creates a new CongregationRepository
func NewCongregationRepository(db *gorm.DB) CongregationRepository {
	return &GormCongregationRepository{db: db}
}

// Create creates a new congregation
func (r *GormCongregationRepository) Create(congregation *models.Congregation) error {
	return r.db.Create(congregation).Error
}

// FindByID finds a congregation by ID
func (r *GormCongregationRepository) FindByID(id uint64) (*models.Congregation, error) {
	var congregation models.Congregation
	if err := r.db.First(&congregation, id).Error; err != nil {
		return nil, err
	}
	return &congregation, nil
}

// FindByAccessCode finds a congregation by its signup access code
func (r *GormCongregationRepository) FindByAccessCode(code string) (*models.Congregation, error) {
	var congregation models.Congregation
	if err := r.db.Where("access_code = ?", code).First(&congregation).Error; err != nil {
		return nil, err
	}
	return &congregation, nil
}

// List returns all congregations ordered by name
func (r *GormCongregationRepository) List() ([]models.Congregation, error) {
	var congregations []models.Congregation
	if err := r.db.Order("name ASC").Find(&congregations).Error; err != nil {
		return nil, err
	}
	return congregations, nil
}

// Update updates a congregation
func (r *GormCongregationRepository) Update(congregation *models.Congregation) error {
	return r.db.Save(congregation).Error
}

// Delete deletes a congregation and detaches its users in a transaction
func (r *GormCongregationRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("congregation_id = ?", id).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Congregation{}, id).Error
	})
}
