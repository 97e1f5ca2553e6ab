package repository

import (
	"github.com/ppam-app/ppam-scheduler/internal/database"
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Congregation").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUserName finds a user by userName
func (r *GormUserRepository) FindByUserName(userName string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users with filtering and pagination
func (r *GormUserRepository) List(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.CongregationID != nil {
		query = query.Where("congregation_id = ?", *filter.CongregationID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Privilege != nil {
		// Privileges live in a JSON text column; match the quoted tag.
		query = query.Where("privileges LIKE ?", "%\""+*filter.Privilege+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("nombre ASC")
	if filter.Pagination.Limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(filter.Pagination))
	}

	var users []models.User
	if err := listQuery.Preload("Congregation").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateRules replaces the user's participation rules wholesale
func (r *GormUserRepository) UpdateRules(id uint64, rules models.RuleList) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("rules", rules).Error
}

// UpdateAvailability replaces the user's weekly availability map
func (r *GormUserRepository) UpdateAvailability(id uint64, availability models.AvailabilityMap) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("availability", availability).Error
}

// Delete soft deletes a user
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Delete(&models.User{}, id).Error
}
