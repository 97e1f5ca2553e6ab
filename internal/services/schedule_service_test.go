package services

import (
	"testing"
	"time"

	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ScheduleServiceTestSuite exercises the service against real
// repositories on an in-memory database.
type ScheduleServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	cache   *participation.Cache
	service *ScheduleService
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.WeekSchedule{}, &models.ParticipationRecord{})
	suite.Require().NoError(err)

	suite.cache = participation.NewCache(time.Minute)
	suite.service = NewScheduleService(
		repository.NewWeekRepository(suite.db),
		repository.NewHistoryRepository(suite.db),
		suite.cache,
		zap.NewNop(),
	)
}

func (suite *ScheduleServiceTestSuite) weekStart() time.Time {
	return time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)
}

func (suite *ScheduleServiceTestSuite) TestGetWeekNeverSaved() {
	week, err := suite.service.GetWeek(suite.weekStart())
	suite.NoError(err)
	suite.Equal(suite.weekStart(), week.WeekStart)
	suite.NotNil(week.Assignments)
	suite.Empty(week.Assignments)
}

func (suite *ScheduleServiceTestSuite) TestGetWeekNormalizesToMonday() {
	// Any day of the week resolves to the same record.
	wednesday := time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC)
	week, err := suite.service.GetWeek(wednesday)
	suite.NoError(err)
	suite.Equal(suite.weekStart(), week.WeekStart)
}

func (suite *ScheduleServiceTestSuite) TestSaveWeekPersistsAndRebuildsHistory() {
	input := SaveWeekInput{
		WeekStart: suite.weekStart(),
		Assignments: models.AssignmentMap{
			"lunes-T1-0":     "jperez",
			"miercoles-T2-1": "mgarcia",
			"viernes-T1-0":   "",
		},
		UpdatedBy: 7,
	}

	suite.NoError(suite.service.SaveWeek(input))

	week, err := suite.service.GetWeek(suite.weekStart())
	suite.NoError(err)
	suite.Equal("jperez", week.Assignments["lunes-T1-0"])
	suite.Equal(uint64(7), week.UpdatedBy)

	var records []models.ParticipationRecord
	suite.NoError(suite.db.Order("date ASC").Find(&records).Error)
	suite.Require().Len(records, 2)

	// Empty seats do not produce history entries and each record carries
	// the concrete date of its day within the week.
	suite.Equal("jperez", records[0].UserName)
	suite.True(records[0].Date.Equal(suite.weekStart()))
	suite.Equal("mgarcia", records[1].UserName)
	suite.True(records[1].Date.Equal(suite.weekStart().AddDate(0, 0, 2)))
	suite.Equal("T2", records[1].Turno)
	suite.Equal(1, records[1].IndexValue)
}

func (suite *ScheduleServiceTestSuite) TestSaveWeekOverwritesPreviousSave() {
	first := SaveWeekInput{
		WeekStart:   suite.weekStart(),
		Assignments: models.AssignmentMap{"lunes-T1-0": "jperez", "martes-T1-0": "mgarcia"},
		UpdatedBy:   1,
	}
	suite.NoError(suite.service.SaveWeek(first))

	second := SaveWeekInput{
		WeekStart:   suite.weekStart(),
		Assignments: models.AssignmentMap{"lunes-T1-0": "alopez"},
		UpdatedBy:   2,
	}
	suite.NoError(suite.service.SaveWeek(second))

	week, err := suite.service.GetWeek(suite.weekStart())
	suite.NoError(err)
	suite.Equal(models.AssignmentMap{"lunes-T1-0": "alopez"}, week.Assignments)
	suite.Equal(uint64(2), week.UpdatedBy)

	var count int64
	suite.NoError(suite.db.Model(&models.ParticipationRecord{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ScheduleServiceTestSuite) TestSaveWeekLeavesOtherWeeksAlone() {
	otherWeek := suite.weekStart().AddDate(0, 0, 7)
	suite.NoError(suite.service.SaveWeek(SaveWeekInput{
		WeekStart:   otherWeek,
		Assignments: models.AssignmentMap{"lunes-T1-0": "jperez"},
	}))
	suite.NoError(suite.service.SaveWeek(SaveWeekInput{
		WeekStart:   suite.weekStart(),
		Assignments: models.AssignmentMap{"lunes-T1-0": "mgarcia"},
	}))

	var count int64
	suite.NoError(suite.db.Model(&models.ParticipationRecord{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *ScheduleServiceTestSuite) TestSaveWeekRejectsBadKey() {
	err := suite.service.SaveWeek(SaveWeekInput{
		WeekStart:   suite.weekStart(),
		Assignments: models.AssignmentMap{"festivo-T1-0": "jperez"},
	})
	suite.ErrorIs(err, ErrInvalidWeekKey)
}

func (suite *ScheduleServiceTestSuite) TestSaveWeekInvalidatesCache() {
	wednesday := suite.weekStart().AddDate(0, 0, 2)
	suite.cache.Put("jperez", wednesday, participation.Result{CanParticipate: true})

	suite.NoError(suite.service.SaveWeek(SaveWeekInput{
		WeekStart:   suite.weekStart(),
		Assignments: models.AssignmentMap{"lunes-T1-0": "mgarcia"},
	}))

	_, ok := suite.cache.Get("jperez", wednesday)
	suite.False(ok)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func TestParseWeekKey(t *testing.T) {
	day, turno, index, err := ParseWeekKey("miercoles-T2-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "miercoles" || turno != "T2" || index != 1 {
		t.Fatalf("got %q %q %d", day, turno, index)
	}

	for _, key := range []string{"", "lunes", "lunes-T1", "lunes-T1-0-extra", "festivo-T1-0", "lunes--0", "lunes-T1-x", "lunes-T1--1"} {
		if _, _, _, err := ParseWeekKey(key); err == nil {
			t.Errorf("expected error for key %q", key)
		}
	}
}
