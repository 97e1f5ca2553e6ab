package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"github.com/ppam-app/ppam-scheduler/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrCongregationNotFound       = errors.New("congregation not found")
	ErrInvalidCongregationName    = errors.New("congregation name cannot be empty")
	ErrAccessCodeGenerationFailed = errors.New("failed to generate access code")
)

// CongregationService provides business logic for congregation administration.
type CongregationService struct {
	congRepo repository.CongregationRepository
}

// NewCongregationService creates a new CongregationService.
func NewCongregationService(congRepo repository.CongregationRepository) *CongregationService {
	return &CongregationService{
		congRepo: congRepo,
	}
}

// CreateCongregation creates a congregation with a fresh access code.
func (s *CongregationService) CreateCongregation(name, city string) (*models.Congregation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCongregationName
	}

	accessCode, err := utils.GenerateAccessCode()
	if err != nil {
		return nil, ErrAccessCodeGenerationFailed
	}

	congregation := &models.Congregation{
		Name:       strings.TrimSpace(name),
		City:       strings.TrimSpace(city),
		AccessCode: accessCode,
	}

	if err := s.congRepo.Create(congregation); err != nil {
		return nil, fmt.Errorf("failed to create congregation: %w", err)
	}

	return congregation, nil
}

// ListCongregations returns all congregations.
func (s *CongregationService) ListCongregations() ([]models.Congregation, error) {
	congregations, err := s.congRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list congregations: %w", err)
	}
	return congregations, nil
}

// GetCongregation retrieves a congregation by ID.
func (s *CongregationService) GetCongregation(id uint64) (*models.Congregation, error) {
	congregation, err := s.congRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCongregationNotFound
		}
		return nil, fmt.Errorf("failed to find congregation: %w", err)
	}
	return congregation, nil
}

// UpdateCongregation renames a congregation.
func (s *CongregationService) UpdateCongregation(id uint64, name, city string) (*models.Congregation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCongregationName
	}

	congregation, err := s.GetCongregation(id)
	if err != nil {
		return nil, err
	}

	congregation.Name = strings.TrimSpace(name)
	congregation.City = strings.TrimSpace(city)

	if err := s.congRepo.Update(congregation); err != nil {
		return nil, fmt.Errorf("failed to update congregation: %w", err)
	}

	return congregation, nil
}

// RegenerateAccessCode replaces the signup access code.
func (s *CongregationService) RegenerateAccessCode(id uint64) (*models.Congregation, error) {
	congregation, err := s.GetCongregation(id)
	if err != nil {
		return nil, err
	}

	accessCode, err := utils.GenerateAccessCode()
	if err != nil {
		return nil, ErrAccessCodeGenerationFailed
	}

	congregation.AccessCode = accessCode
	if err := s.congRepo.Update(congregation); err != nil {
		return nil, fmt.Errorf("failed to update congregation: %w", err)
	}

	return congregation, nil
}

// DeleteCongregation removes a congregation and deactivates its volunteers.
func (s *CongregationService) DeleteCongregation(id uint64) error {
	if _, err := s.GetCongregation(id); err != nil {
		return err
	}

	if err := s.congRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete congregation: %w", err)
	}

	return nil
}
