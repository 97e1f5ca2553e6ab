package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrIncidenciaNotFound      = errors.New("incidencia not found")
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrInvalidIncidenciaMotivo = errors.New("invalid incidencia motivo")
)

// IncidenciaService manages absence records.
type IncidenciaService struct {
	incidenciaRepo repository.IncidenciaRepository
	userRepo       repository.UserRepository
}

// NewIncidenciaService creates a new IncidenciaService.
func NewIncidenciaService(incidenciaRepo repository.IncidenciaRepository, userRepo repository.UserRepository) *IncidenciaService {
	return &IncidenciaService{
		incidenciaRepo: incidenciaRepo,
		userRepo:       userRepo,
	}
}

// CreateIncidenciaInput represents a new absence period.
type CreateIncidenciaInput struct {
	UserID    uint64
	StartDate time.Time
	EndDate   time.Time
	Motivo    string
	Notes     string
}

// CreateIncidencia records an absence period for a volunteer.
func (s *IncidenciaService) CreateIncidencia(input CreateIncidenciaInput) (*models.Incidencia, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	switch input.Motivo {
	case models.IncidenciaVacaciones, models.IncidenciaEnfermedad, models.IncidenciaOtro:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidIncidenciaMotivo, input.Motivo)
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	incidencia := &models.Incidencia{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Motivo:    input.Motivo,
		Notes:     input.Notes,
	}

	if err := s.incidenciaRepo.Create(incidencia); err != nil {
		return nil, fmt.Errorf("failed to create incidencia: %w", err)
	}

	return incidencia, nil
}

// ListByUser returns a volunteer's absences, newest first.
func (s *IncidenciaService) ListByUser(userID uint64) ([]models.Incidencia, error) {
	incidencias, err := s.incidenciaRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidencias: %w", err)
	}
	return incidencias, nil
}

// ListActiveOn returns absences covering the given date.
func (s *IncidenciaService) ListActiveOn(date time.Time) ([]models.Incidencia, error) {
	incidencias, err := s.incidenciaRepo.ListActiveOn(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidencias: %w", err)
	}
	return incidencias, nil
}

// DeleteIncidencia removes an absence record.
func (s *IncidenciaService) DeleteIncidencia(id uint64) error {
	if _, err := s.incidenciaRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIncidenciaNotFound
		}
		return fmt.Errorf("failed to find incidencia: %w", err)
	}

	if err := s.incidenciaRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete incidencia: %w", err)
	}
	return nil
}
