package repository

import (
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/utils"
)

// UserFilter holds filtering options for listing users
type UserFilter struct {
	CongregationID *uint64
	Active         *bool
	Privilege      *string
	Pagination     utils.PaginationParams
}

// UserRepository defines the interface for volunteer data access
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByUserName(userName string) (*models.User, error)
	List(filter UserFilter) ([]models.User, int64, error)
	Update(user *models.User) error
	// UpdateRules replaces the rule set wholesale.
	UpdateRules(id uint64, rules models.RuleList) error
	UpdateAvailability(id uint64, availability models.AvailabilityMap) error
	Delete(id uint64) error
}

// CongregationRepository defines the interface for congregation data access
type CongregationRepository interface {
	Create(congregation *models.Congregation) error
	FindByID(id uint64) (*models.Congregation, error)
	FindByAccessCode(code string) (*models.Congregation, error)
	List() ([]models.Congregation, error)
	Update(congregation *models.Congregation) error
	Delete(id uint64) error
}

// WeekRepository defines the interface for weekly schedule data access
type WeekRepository interface {
	FindByWeekStart(weekStart time.Time) (*models.WeekSchedule, error)
	// Upsert writes the week record, overwriting assignments in place.
	Upsert(week *models.WeekSchedule) error
}

// HistoryRepository defines the interface for the participation history log
type HistoryRepository interface {
	// ListByUser returns a volunteer's records ordered by date ascending,
	// optionally floored at fromDate.
	ListByUser(userName string, fromDate *time.Time) ([]models.ParticipationRecord, error)
	// ReplaceWeek atomically swaps the records for the week starting at
	// weekStart with the given set.
	ReplaceWeek(weekStart time.Time, records []models.ParticipationRecord) error
}

// IncidenciaRepository defines the interface for absence records
type IncidenciaRepository interface {
	Create(incidencia *models.Incidencia) error
	FindByID(id uint64) (*models.Incidencia, error)
	ListByUser(userID uint64) ([]models.Incidencia, error)
	// ListActiveOn returns absences whose range covers the given date.
	ListActiveOn(date time.Time) ([]models.Incidencia, error)
	Delete(id uint64) error
}
