package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-care/internal/annualleave"
	calendarerrors "go-care/internal/calendar/errors"
	"go-care/internal/leave"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OrgKeyPrefix   = "calendar:org:"
	StatsKeyPrefix = "calendar:stats:"
	GenKeyPrefix   = "calendar:gen:"
	CacheTTL       = time.Hour

	dateLayout = "2006-01-02"
)

func OrgCalendarKey(companyID, branchID string, year int) string {
	return fmt.Sprintf("%s%s:%s:%d", OrgKeyPrefix, companyID, branchID, year)
}

func StatsKey(companyID, branchID string, year int) string {
	return fmt.Sprintf("%s%s:%s:%d", StatsKeyPrefix, companyID, branchID, year)
}

// GenerationKey holds a counter the invalidator bumps before deleting a
// company's views. A fill only stores its result if the counter is unchanged.
func GenerationKey(companyID string) string {
	return GenKeyPrefix + companyID
}

type LeaveReader interface {
	FindApprovedOverlapping(ctx context.Context, companyID, branchID string, from, to time.Time) ([]leave.LeaveRequest, error)
	FindByBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]leave.LeaveRequest, error)
}

type AnnualLeaveReader interface {
	FindForBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]annualleave.AnnualLeaveEntry, error)
}

type Service interface {
	OrganizationCalendar(ctx context.Context, companyID, branchID string, year int) (OrganizationCalendar, error)
	Stats(ctx context.Context, companyID, branchID string, year int) (Stats, error)
	// Refresh rebuilds the organization calendar and overwrites its cache entry.
	Refresh(ctx context.Context, companyID, branchID string, year int) error
}

type service struct {
	leaves   LeaveReader
	holidays AnnualLeaveReader
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(leaves LeaveReader, holidays AnnualLeaveReader, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{
		leaves:   leaves,
		holidays: holidays,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) OrganizationCalendar(ctx context.Context, companyID, branchID string, year int) (OrganizationCalendar, error) {
	if err := validate(branchID, year); err != nil {
		return OrganizationCalendar{}, err
	}
	return cached(ctx, s, companyID, OrgCalendarKey(companyID, branchID, year), func(ctx context.Context) (OrganizationCalendar, error) {
		return s.buildCalendar(ctx, companyID, branchID, year)
	})
}

func (s *service) Stats(ctx context.Context, companyID, branchID string, year int) (Stats, error) {
	if err := validate(branchID, year); err != nil {
		return Stats{}, err
	}
	return cached(ctx, s, companyID, StatsKey(companyID, branchID, year), func(ctx context.Context) (Stats, error) {
		return s.buildStats(ctx, companyID, branchID, year)
	})
}

func (s *service) Refresh(ctx context.Context, companyID, branchID string, year int) error {
	if err := validate(branchID, year); err != nil {
		return err
	}

	gen, ok := s.generation(ctx, companyID)
	cal, err := s.buildCalendar(ctx, companyID, branchID, year)
	if err != nil {
		return err
	}
	if ok {
		s.storeIfCurrent(ctx, companyID, gen, OrgCalendarKey(companyID, branchID, year), cal)
	}
	return nil
}

// cached reads key from redis, falling back to load through singleflight
// and storing the result unless the company was invalidated meanwhile.
func cached[T any](ctx context.Context, s *service, companyID, key string, load func(context.Context) (T, error)) (T, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var v T
			if json.Unmarshal([]byte(raw), &v) == nil {
				return v, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		gen, ok := s.generation(ctx, companyID)
		fresh, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			s.storeIfCurrent(ctx, companyID, gen, key, fresh)
		}
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// generation reports the company's invalidation counter. A missing counter
// reads as zero; ok is false when redis is unavailable.
func (s *service) generation(ctx context.Context, companyID string) (int64, bool) {
	if s.rdb == nil {
		return 0, false
	}
	gen, err := s.rdb.Get(ctx, GenerationKey(companyID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		s.logger.Warn("calendar generation read failed", zap.String("company_id", companyID), zap.Error(err))
		return 0, false
	}
	return gen, true
}

func (s *service) storeIfCurrent(ctx context.Context, companyID string, gen int64, key string, v any) {
	now, ok := s.generation(ctx, companyID)
	if !ok || now != gen {
		s.logger.Debug("calendar cache fill discarded",
			zap.String("key", key),
			zap.Int64("started", gen),
			zap.Int64("current", now),
		)
		return
	}
	s.store(ctx, key, v)
}

func (s *service) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, string(data), CacheTTL).Err(); err != nil {
		s.logger.Warn("calendar cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) buildCalendar(ctx context.Context, companyID, branchID string, year int) (OrganizationCalendar, error) {
	from, to := yearBounds(year)

	approved, err := s.leaves.FindApprovedOverlapping(ctx, companyID, branchID, from, to)
	if err != nil {
		s.logger.Error("calendar approved leave lookup failed", zap.Error(err))
		return OrganizationCalendar{}, err
	}
	entries, err := s.holidays.FindForBranchInRange(ctx, companyID, branchID, from, to)
	if err != nil {
		s.logger.Error("calendar annual leave lookup failed", zap.Error(err))
		return OrganizationCalendar{}, err
	}

	days := map[string]*Day{}
	dayFor := func(t time.Time) *Day {
		key := t.Format(dateLayout)
		d, ok := days[key]
		if !ok {
			d = &Day{Date: key}
			days[key] = d
		}
		return d
	}

	for _, l := range approved {
		start, end := clip(l.StartDate, l.EndDate, from, to)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			day := dayFor(d)
			day.Leave = append(day.Leave, LeaveItem{
				LeaveRequestID: l.ID.String(),
				StaffID:        l.StaffID.String(),
				LeaveType:      l.LeaveType,
			})
		}
	}
	for _, e := range entries {
		item := HolidayItem{
			EntryID:       e.ID.String(),
			LeaveName:     e.LeaveName,
			IsCompanyWide: e.IsCompanyWide,
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
		}
		if e.StaffID != nil {
			v := e.StaffID.String()
			item.StaffID = &v
		}
		day := dayFor(e.LeaveDate)
		day.Holidays = append(day.Holidays, item)
	}

	cal := OrganizationCalendar{
		CompanyID: companyID,
		BranchID:  branchID,
		Year:      year,
		Days:      make([]Day, 0, len(days)),
	}
	for _, d := range days {
		cal.Days = append(cal.Days, *d)
	}
	sort.Slice(cal.Days, func(i, j int) bool { return cal.Days[i].Date < cal.Days[j].Date })
	return cal, nil
}

func (s *service) buildStats(ctx context.Context, companyID, branchID string, year int) (Stats, error) {
	from, to := yearBounds(year)

	requests, err := s.leaves.FindByBranchInRange(ctx, companyID, branchID, from, to)
	if err != nil {
		s.logger.Error("calendar stats leave lookup failed", zap.Error(err))
		return Stats{}, err
	}
	entries, err := s.holidays.FindForBranchInRange(ctx, companyID, branchID, from, to)
	if err != nil {
		s.logger.Error("calendar stats annual leave lookup failed", zap.Error(err))
		return Stats{}, err
	}

	st := Stats{
		CompanyID:          companyID,
		BranchID:           branchID,
		Year:               year,
		RequestsByStatus:   map[string]int{},
		RequestsByType:     map[string]int{},
		AnnualLeaveEntries: len(entries),
	}
	for _, r := range requests {
		st.RequestsByStatus[r.Status]++
		st.RequestsByType[r.LeaveType]++
		if r.Status == leave.StatusApproved {
			start, end := clip(r.StartDate, r.EndDate, from, to)
			st.ApprovedBusinessDays += leave.BusinessDays(start, end)
		}
	}
	return st, nil
}

func validate(branchID string, year int) error {
	if _, err := uuid.Parse(branchID); err != nil {
		return calendarerrors.ErrInvalidBranchID
	}
	if year < 1970 || year > 9999 {
		return calendarerrors.ErrInvalidYear
	}
	return nil
}

func yearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func clip(start, end, from, to time.Time) (time.Time, time.Time) {
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	return start, end
}
