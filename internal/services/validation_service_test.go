package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) Create(user *models.User) error { return nil }

func (r *stubUserRepo) FindByID(id uint64) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByUserName(userName string) (*models.User, error) {
	user, ok := r.users[userName]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *stubUserRepo) List(filter repository.UserFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) Update(user *models.User) error { return nil }

func (r *stubUserRepo) UpdateRules(id uint64, rules models.RuleList) error { return nil }

func (r *stubUserRepo) UpdateAvailability(id uint64, availability models.AvailabilityMap) error {
	return nil
}

func (r *stubUserRepo) Delete(id uint64) error { return nil }

type stubHistoryRepo struct {
	records []models.ParticipationRecord
	err     error
	calls   int
}

func (r *stubHistoryRepo) ListByUser(userName string, fromDate *time.Time) ([]models.ParticipationRecord, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.records, nil
}

func (r *stubHistoryRepo) ReplaceWeek(weekStart time.Time, records []models.ParticipationRecord) error {
	return nil
}

func newValidationFixture(user *models.User, history *stubHistoryRepo) *ValidationService {
	users := map[string]*models.User{}
	if user != nil {
		users[user.UserName] = user
	}
	return NewValidationService(&stubUserRepo{users: users}, history, participation.NewCache(time.Minute), zap.NewNop())
}

func historyRecord(userName string, d time.Time) models.ParticipationRecord {
	return models.ParticipationRecord{UserName: userName, Date: d, Day: "lunes", Turno: "T1", IndexValue: 0}
}

func TestValidateParticipation_UserNotFound(t *testing.T) {
	svc := newValidationFixture(nil, &stubHistoryRepo{})

	_, err := svc.ValidateParticipation("nadie", time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateParticipation_BlocksAtMonthlyLimit(t *testing.T) {
	user := &models.User{
		UserName: "jperez",
		Rules:    models.RuleList{{Type: participation.RuleMaxPerMonth, Value: 2}},
	}
	history := &stubHistoryRepo{records: []models.ParticipationRecord{
		historyRecord("jperez", time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)),
		historyRecord("jperez", time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)),
	}}
	svc := newValidationFixture(user, history)

	result, err := svc.ValidateParticipation("jperez", time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, result.CanParticipate)
	assert.NotEmpty(t, result.Restrictions)
}

func TestValidateParticipation_FailsOpenOnHistoryError(t *testing.T) {
	user := &models.User{
		UserName: "jperez",
		Rules:    models.RuleList{{Type: participation.RuleMaxPerMonth, Value: 1}},
	}
	history := &stubHistoryRepo{err: errors.New("connection refused")}
	svc := newValidationFixture(user, history)

	result, err := svc.ValidateParticipation("jperez", time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// The storage failure degrades to an empty history instead of
	// blocking the volunteer.
	assert.True(t, result.CanParticipate)
	assert.Empty(t, result.Restrictions)
}

func TestValidateParticipation_CachesResult(t *testing.T) {
	user := &models.User{
		UserName: "jperez",
		Rules:    models.RuleList{{Type: participation.RuleMaxPerWeek, Value: 1}},
	}
	history := &stubHistoryRepo{records: []models.ParticipationRecord{
		historyRecord("jperez", time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)),
	}}
	svc := newValidationFixture(user, history)

	selected := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)
	first, err := svc.ValidateParticipation("jperez", selected)
	require.NoError(t, err)
	second, err := svc.ValidateParticipation("jperez", selected)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, history.calls)
}

func TestGetHistory_PropagatesStorageError(t *testing.T) {
	user := &models.User{UserName: "jperez"}
	history := &stubHistoryRepo{err: errors.New("connection refused")}
	svc := newValidationFixture(user, history)

	_, err := svc.GetHistory("jperez", nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestGetHistory_UserNotFound(t *testing.T) {
	svc := newValidationFixture(nil, &stubHistoryRepo{})

	_, err := svc.GetHistory("nadie", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetHistory_FromDate(t *testing.T) {
	user := &models.User{UserName: "jperez"}
	history := &stubHistoryRepo{records: []models.ParticipationRecord{
		historyRecord("jperez", time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)),
	}}
	svc := newValidationFixture(user, history)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	records, err := svc.GetHistory("jperez", &from)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
