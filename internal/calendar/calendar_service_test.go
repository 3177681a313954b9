package calendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-care/internal/annualleave"
	"go-care/internal/calendar"
	calendarerrors "go-care/internal/calendar/errors"
	"go-care/internal/leave"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type stubLeaves struct {
	approved []leave.LeaveRequest
	all      []leave.LeaveRequest
	calls    int
	err      error
}

func (s *stubLeaves) FindApprovedOverlapping(context.Context, string, string, time.Time, time.Time) ([]leave.LeaveRequest, error) {
	s.calls++
	return s.approved, s.err
}

func (s *stubLeaves) FindByBranchInRange(context.Context, string, string, time.Time, time.Time) ([]leave.LeaveRequest, error) {
	s.calls++
	return s.all, s.err
}

type stubHolidays struct {
	rows  []annualleave.AnnualLeaveEntry
	calls int
}

func (s *stubHolidays) FindForBranchInRange(context.Context, string, string, time.Time, time.Time) ([]annualleave.AnnualLeaveEntry, error) {
	s.calls++
	return s.rows, nil
}

func TestCalendarService_OrganizationCalendar(t *testing.T) {
	companyID := uuid.NewString()
	branchID := uuid.New()
	key := calendar.OrgCalendarKey(companyID, branchID.String(), 2026)
	genKey := calendar.GenerationKey(companyID)

	t.Run("cache miss builds days and stores them", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		leaves := &stubLeaves{approved: []leave.LeaveRequest{{
			ID:        uuid.New(),
			StaffID:   uuid.New(),
			BranchID:  branchID,
			LeaveType: leave.TypeAnnual,
			Status:    leave.StatusApproved,
			StartDate: day("2025-12-30"),
			EndDate:   day("2026-01-02"),
		}}}
		holidays := &stubHolidays{rows: []annualleave.AnnualLeaveEntry{{
			ID:            uuid.New(),
			LeaveName:     "New Year",
			IsCompanyWide: true,
			LeaveDate:     day("2026-01-01"),
		}}}

		mock.ExpectGet(key).RedisNil()
		mock.ExpectGet(genKey).RedisNil()
		mock.ExpectGet(genKey).RedisNil()
		mock.Regexp().ExpectSet(key, `"date":"2026-01-01"`, calendar.CacheTTL).SetVal("OK")

		svc := calendar.NewService(leaves, holidays, rdb)
		got, err := svc.OrganizationCalendar(context.Background(), companyID, branchID.String(), 2026)

		assert.NoError(t, err)
		// the leave is clipped to the requested year
		assert.Len(t, got.Days, 2)
		assert.Equal(t, "2026-01-01", got.Days[0].Date)
		assert.Len(t, got.Days[0].Leave, 1)
		assert.Len(t, got.Days[0].Holidays, 1)
		assert.Equal(t, "2026-01-02", got.Days[1].Date)
		assert.Empty(t, got.Days[1].Holidays)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the readers", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		leaves := &stubLeaves{}
		holidays := &stubHolidays{}

		cachedCal := calendar.OrganizationCalendar{
			CompanyID: companyID,
			BranchID:  branchID.String(),
			Year:      2026,
			Days:      []calendar.Day{{Date: "2026-03-02"}},
		}
		raw, _ := json.Marshal(cachedCal)
		mock.ExpectGet(key).SetVal(string(raw))

		svc := calendar.NewService(leaves, holidays, rdb)
		got, err := svc.OrganizationCalendar(context.Background(), companyID, branchID.String(), 2026)

		assert.NoError(t, err)
		assert.Equal(t, cachedCal, got)
		assert.Zero(t, leaves.calls)
		assert.Zero(t, holidays.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reader error is returned and nothing cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()
		mock.ExpectGet(genKey).SetVal("4")

		svc := calendar.NewService(&stubLeaves{err: errors.New("db down")}, &stubHolidays{}, rdb)
		_, err := svc.OrganizationCalendar(context.Background(), companyID, branchID.String(), 2026)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fill overtaken by an invalidation is not stored", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		leaves := &stubLeaves{}

		mock.ExpectGet(key).RedisNil()
		mock.ExpectGet(genKey).SetVal("4")
		mock.ExpectGet(genKey).SetVal("5")

		svc := calendar.NewService(leaves, &stubHolidays{}, rdb)
		got, err := svc.OrganizationCalendar(context.Background(), companyID, branchID.String(), 2026)

		assert.NoError(t, err)
		assert.Equal(t, 2026, got.Year)
		assert.Equal(t, 1, leaves.calls)
		// no Set expected
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := calendar.NewService(&stubLeaves{}, &stubHolidays{}, nil)

		_, err := svc.OrganizationCalendar(context.Background(), companyID, "nope", 2026)
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidBranchID)

		_, err = svc.OrganizationCalendar(context.Background(), companyID, branchID.String(), 12)
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidYear)
	})
}

func TestCalendarService_Stats(t *testing.T) {
	companyID := uuid.NewString()
	branchID := uuid.NewString()
	key := calendar.StatsKey(companyID, branchID, 2026)

	rdb, mock := redismock.NewClientMock()
	leaves := &stubLeaves{all: []leave.LeaveRequest{
		// Mon..Fri of the first full week, plus the weekend after
		{Status: leave.StatusApproved, LeaveType: leave.TypeAnnual, StartDate: day("2026-01-05"), EndDate: day("2026-01-11")},
		// only Dec 31 2026 (Thursday) falls in the year
		{Status: leave.StatusApproved, LeaveType: leave.TypeSick, StartDate: day("2026-12-31"), EndDate: day("2027-01-04")},
		{Status: leave.StatusPending, LeaveType: leave.TypeAnnual, StartDate: day("2026-02-02"), EndDate: day("2026-02-03")},
		{Status: leave.StatusRejected, LeaveType: leave.TypePersonal, StartDate: day("2026-03-02"), EndDate: day("2026-03-02")},
	}}
	holidays := &stubHolidays{rows: make([]annualleave.AnnualLeaveEntry, 3)}

	mock.ExpectGet(key).RedisNil()
	mock.ExpectGet(calendar.GenerationKey(companyID)).SetVal("2")
	mock.ExpectGet(calendar.GenerationKey(companyID)).SetVal("2")
	mock.Regexp().ExpectSet(key, `"approved_business_days":6`, calendar.CacheTTL).SetVal("OK")

	svc := calendar.NewService(leaves, holidays, rdb)
	got, err := svc.Stats(context.Background(), companyID, branchID, 2026)

	assert.NoError(t, err)
	assert.Equal(t, 6, got.ApprovedBusinessDays)
	assert.Equal(t, 3, got.AnnualLeaveEntries)
	assert.Equal(t, map[string]int{
		leave.StatusApproved: 2,
		leave.StatusPending:  1,
		leave.StatusRejected: 1,
	}, got.RequestsByStatus)
	assert.Equal(t, map[string]int{
		leave.TypeAnnual:   2,
		leave.TypeSick:     1,
		leave.TypePersonal: 1,
	}, got.RequestsByType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarService_Refresh(t *testing.T) {
	companyID := uuid.NewString()
	branchID := uuid.NewString()
	key := calendar.OrgCalendarKey(companyID, branchID, 2027)

	rdb, mock := redismock.NewClientMock()
	leaves := &stubLeaves{}

	// no cache read: refresh always rebuilds
	mock.ExpectGet(calendar.GenerationKey(companyID)).SetVal("7")
	mock.ExpectGet(calendar.GenerationKey(companyID)).SetVal("7")
	mock.Regexp().ExpectSet(key, `"year":2027`, calendar.CacheTTL).SetVal("OK")

	svc := calendar.NewService(leaves, &stubHolidays{}, rdb)
	err := svc.Refresh(context.Background(), companyID, branchID, 2027)

	assert.NoError(t, err)
	assert.Equal(t, 1, leaves.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
