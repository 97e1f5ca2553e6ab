package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ValidationService orchestrates rule lookup, history retrieval and the
// participation validator.
type ValidationService struct {
	userRepo    repository.UserRepository
	historyRepo repository.HistoryRepository
	cache       *participation.Cache
	logger      *zap.Logger
}

// NewValidationService creates a new ValidationService.
func NewValidationService(userRepo repository.UserRepository, historyRepo repository.HistoryRepository, cache *participation.Cache, logger *zap.Logger) *ValidationService {
	return &ValidationService{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		cache:       cache,
		logger:      logger,
	}
}

// ValidateParticipation checks whether a volunteer may be assigned on
// selectedDate. A history fetch failure degrades to an empty history:
// validation fails open so a transient storage error never blocks the
// scheduling grid.
func (s *ValidationService) ValidateParticipation(userName string, selectedDate time.Time) (participation.Result, error) {
	user, err := s.userRepo.FindByUserName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return participation.Result{}, ErrUserNotFound
		}
		return participation.Result{}, fmt.Errorf("failed to find user: %w", err)
	}

	if result, ok := s.cache.Get(userName, selectedDate); ok {
		return result, nil
	}

	history := s.fetchHistory(userName)
	result := participation.Validate(user.Rules, selectedDate, history)
	s.cache.Put(userName, selectedDate, result)

	return result, nil
}

// fetchHistory loads a volunteer's records, falling back to an empty
// history on failure.
func (s *ValidationService) fetchHistory(userName string) []participation.Record {
	records, err := s.historyRepo.ListByUser(userName, nil)
	if err != nil {
		s.logger.Warn("history fetch failed, validating with empty history",
			zap.String("userName", userName),
			zap.Error(err))
		return nil
	}
	return toParticipationRecords(records)
}

// GetHistory returns a volunteer's participation records, optionally
// floored at fromDate. Unlike the validation path this propagates
// storage errors to the caller.
func (s *ValidationService) GetHistory(userName string, fromDate *time.Time) ([]models.ParticipationRecord, error) {
	if _, err := s.userRepo.FindByUserName(userName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	records, err := s.historyRepo.ListByUser(userName, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return records, nil
}

func toParticipationRecords(records []models.ParticipationRecord) []participation.Record {
	out := make([]participation.Record, len(records))
	for i, rec := range records {
		out[i] = participation.Record{
			UserName:   rec.UserName,
			Date:       rec.Date,
			Day:        rec.Day,
			Turno:      rec.Turno,
			IndexValue: rec.IndexValue,
		}
	}
	return out
}
