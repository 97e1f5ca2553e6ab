package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidWeekKey = errors.New("invalid week key")
)

// ScheduleService manages the weekly shift grid and keeps the derived
// participation history in step with it.
type ScheduleService struct {
	weekRepo    repository.WeekRepository
	historyRepo repository.HistoryRepository
	cache       *participation.Cache
	logger      *zap.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(weekRepo repository.WeekRepository, historyRepo repository.HistoryRepository, cache *participation.Cache, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		weekRepo:    weekRepo,
		historyRepo: historyRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetWeek returns the schedule record for the week containing date. A
// week that was never saved comes back as an empty grid, not an error.
func (s *ScheduleService) GetWeek(date time.Time) (*models.WeekSchedule, error) {
	weekStart := participation.WeekStart(date)

	week, err := s.weekRepo.FindByWeekStart(weekStart)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.WeekSchedule{
				WeekStart:   weekStart,
				Assignments: models.AssignmentMap{},
			}, nil
		}
		return nil, fmt.Errorf("failed to find week: %w", err)
	}

	if week.Assignments == nil {
		week.Assignments = models.AssignmentMap{}
	}
	return week, nil
}

// SaveWeekInput represents one full save of a week's grid.
type SaveWeekInput struct {
	WeekStart   time.Time
	Assignments models.AssignmentMap
	UpdatedBy   uint64
}

// SaveWeek overwrites the week record and rebuilds that week's slice of
// the participation history from the new assignment map. Two admins
// saving the same week race benignly: last writer wins for the whole
// week.
func (s *ScheduleService) SaveWeek(input SaveWeekInput) error {
	weekStart := participation.WeekStart(input.WeekStart)

	records := make([]models.ParticipationRecord, 0, len(input.Assignments))
	for key, userName := range input.Assignments {
		if userName == "" {
			continue
		}
		day, turno, index, err := ParseWeekKey(key)
		if err != nil {
			return err
		}
		records = append(records, models.ParticipationRecord{
			UserName:   userName,
			Date:       weekStart.AddDate(0, 0, participation.DayOffsets[day]),
			Day:        day,
			Turno:      turno,
			IndexValue: index,
		})
	}

	changed := s.changedUsers(weekStart, input.Assignments)

	week := &models.WeekSchedule{
		WeekStart:   weekStart,
		Assignments: input.Assignments,
		UpdatedBy:   input.UpdatedBy,
	}
	if err := s.weekRepo.Upsert(week); err != nil {
		return fmt.Errorf("failed to save week: %w", err)
	}

	if err := s.historyRepo.ReplaceWeek(weekStart, records); err != nil {
		return fmt.Errorf("failed to rebuild history: %w", err)
	}

	s.cache.InvalidateWeek(weekStart)
	for userName := range changed {
		s.cache.InvalidateUser(userName)
	}

	s.logger.Info("week saved",
		zap.Time("weekStart", weekStart),
		zap.Int("assignments", len(records)),
		zap.Int("changedUsers", len(changed)))

	return nil
}

// changedUsers diffs the stored week against the incoming map and
// returns every userName whose assignments differ.
func (s *ScheduleService) changedUsers(weekStart time.Time, incoming models.AssignmentMap) map[string]struct{} {
	changed := make(map[string]struct{})

	previous := models.AssignmentMap{}
	if week, err := s.weekRepo.FindByWeekStart(weekStart); err == nil && week.Assignments != nil {
		previous = week.Assignments
	}

	for key, userName := range incoming {
		if previous[key] != userName {
			if userName != "" {
				changed[userName] = struct{}{}
			}
			if prev := previous[key]; prev != "" {
				changed[prev] = struct{}{}
			}
		}
	}
	for key, userName := range previous {
		if _, ok := incoming[key]; !ok && userName != "" {
			changed[userName] = struct{}{}
		}
	}

	return changed
}

// ParseWeekKey splits a "{day}-{turno}-{index}" seat key.
func ParseWeekKey(key string) (day, turno string, index int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("%w: %q", ErrInvalidWeekKey, key)
	}

	day = parts[0]
	if _, ok := participation.DayOffsets[day]; !ok {
		return "", "", 0, fmt.Errorf("%w: unknown day %q", ErrInvalidWeekKey, day)
	}

	turno = parts[1]
	if turno == "" {
		return "", "", 0, fmt.Errorf("%w: empty turno in %q", ErrInvalidWeekKey, key)
	}

	index, err = strconv.Atoi(parts[2])
	if err != nil || index < 0 {
		return "", "", 0, fmt.Errorf("%w: bad index in %q", ErrInvalidWeekKey, key)
	}

	return day, turno, index, nil
}
