package annualleave

import (
	"context"
	"database/sql"
	"strings"
	"time"

	annualleaveerrors "go-care/internal/annualleave/errors"
	"go-care/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

//go:generate mockgen -source=annual_leave_service.go -destination=mock/annual_leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateAnnualLeaveRequest) (CreateAnnualLeaveResponse, error)
	GetAll(ctx context.Context, companyID string, filter AnnualLeaveFilter) ([]AnnualLeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AnnualLeaveResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAnnualLeaveRequest) (AnnualLeaveResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	BulkDelete(ctx context.Context, companyID string, ids []string) (int, error)
	UpdateSeries(ctx context.Context, companyID, seriesID string, req UpdateSeriesRequest) ([]AnnualLeaveResponse, error)
	DeleteSeries(ctx context.Context, companyID, seriesID string) (int, error)
	Export(ctx context.Context, companyID string, filter AnnualLeaveFilter) ([]byte, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher events.LeaveMutatedPublisher
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher events.LeaveMutatedPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("annualleave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("annualleave.service")
	}
	if publisher == nil {
		publisher = events.NoopPublisher()
	}
	return &service{db: db, repo: repo, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateAnnualLeaveRequest) (CreateAnnualLeaveResponse, error) {
	s.logger.Debug("create annual leave requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("leave_date", req.LeaveDate),
		zap.Bool("weekly", req.IsWeeklyRecurring),
	)

	base, err := buildEntry(companyID, actorID, req)
	if err != nil {
		s.logger.Warn("create annual leave validation failed", zap.Error(err))
		return CreateAnnualLeaveResponse{}, err
	}
	if err := validateEntry(base); err != nil {
		s.logger.Warn("create annual leave validation failed", zap.Error(err))
		return CreateAnnualLeaveResponse{}, err
	}

	rows := []AnnualLeaveEntry{base}
	if base.IsWeeklyRecurring {
		rows = ExpandWeekly(base)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create annual leave begin tx failed", zap.Error(err))
		return CreateAnnualLeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateBatch(ctx, rows); err != nil {
		s.logger.Error("create annual leave persist failed",
			zap.Int("rows", len(rows)),
			zap.Error(err),
		)
		return CreateAnnualLeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create annual leave commit failed", zap.Error(err))
		return CreateAnnualLeaveResponse{}, err
	}
	s.logger.Info("create annual leave success",
		zap.String("entry_id", rows[0].ID.String()),
		zap.String("company_id", companyID),
		zap.Int("rows", len(rows)),
	)

	s.publish(ctx, "create", companyID, rows...)

	return CreateAnnualLeaveResponse{Entry: mapToResponse(rows[0]), SeriesSize: len(rows)}, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter AnnualLeaveFilter) ([]AnnualLeaveResponse, error) {
	entries, err := s.list(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

func (s *service) list(ctx context.Context, companyID string, filter AnnualLeaveFilter) ([]AnnualLeaveEntry, error) {
	lf, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, companyID, lf)
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AnnualLeaveResponse, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AnnualLeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// Update edits one row in place. A series member stays in its series and
// nothing is expanded again.
func (s *service) Update(ctx context.Context, companyID, id string, req UpdateAnnualLeaveRequest) (AnnualLeaveResponse, error) {
	s.logger.Debug("update annual leave requested",
		zap.String("entry_id", id),
		zap.String("company_id", companyID),
	)

	var newDate *time.Time
	if req.LeaveDate != nil {
		d, err := parseDate(*req.LeaveDate)
		if err != nil {
			return AnnualLeaveResponse{}, err
		}
		newDate = &d
	}
	p := patch{
		BranchID:      req.BranchID,
		StaffID:       req.StaffID,
		LeaveName:     req.LeaveName,
		IsCompanyWide: req.IsCompanyWide,
		IsRecurring:   req.IsRecurring,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update annual leave begin tx failed", zap.Error(err))
		return AnnualLeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AnnualLeaveResponse{}, mapRepositoryError(err)
	}
	before := *e

	if err := p.apply(e); err != nil {
		return AnnualLeaveResponse{}, err
	}
	if newDate != nil {
		e.LeaveDate = *newDate
	}
	if err := validateEntry(*e); err != nil {
		s.logger.Warn("update annual leave validation failed", zap.String("entry_id", id), zap.Error(err))
		return AnnualLeaveResponse{}, err
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update annual leave persist failed", zap.String("entry_id", id), zap.Error(err))
		return AnnualLeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update annual leave commit failed", zap.String("entry_id", id), zap.Error(err))
		return AnnualLeaveResponse{}, err
	}
	s.logger.Info("update annual leave success", zap.String("entry_id", id))

	s.publish(ctx, "update", companyID, before, *e)

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete annual leave failed", zap.String("entry_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete annual leave success", zap.String("entry_id", id))

	s.publish(ctx, "delete", companyID, *e)
	return nil
}

// BulkDelete removes every id or none of them.
func (s *service) BulkDelete(ctx context.Context, companyID string, ids []string) (int, error) {
	distinct, err := distinctIDs(ids)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("bulk delete annual leave requested",
		zap.String("company_id", companyID),
		zap.Int("requested", len(ids)),
		zap.Int("distinct", len(distinct)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk delete annual leave begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	found, err := qtx.FindByIDs(ctx, companyID, distinct)
	if err != nil {
		return 0, err
	}

	deleted, err := qtx.DeleteMany(ctx, companyID, distinct)
	if err != nil {
		s.logger.Error("bulk delete annual leave failed", zap.Error(err))
		return 0, err
	}
	if deleted < int64(len(distinct)) {
		s.logger.Warn("bulk delete annual leave incomplete, rolling back",
			zap.String("company_id", companyID),
			zap.Int64("deleted", deleted),
			zap.Int("expected", len(distinct)),
		)
		return 0, annualleaveerrors.ErrBulkDeleteIncomplete
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk delete annual leave commit failed", zap.Error(err))
		return 0, err
	}
	s.logger.Info("bulk delete annual leave success",
		zap.String("company_id", companyID),
		zap.Int64("deleted", deleted),
	)

	s.publish(ctx, "bulk_delete", companyID, found...)
	return int(deleted), nil
}

// UpdateSeries applies one change to every row of a weekly series. Dates
// are left alone.
func (s *service) UpdateSeries(ctx context.Context, companyID, seriesID string, req UpdateSeriesRequest) ([]AnnualLeaveResponse, error) {
	if _, err := uuid.Parse(seriesID); err != nil {
		return nil, annualleaveerrors.ErrSeriesNotFound
	}
	p := patch{
		BranchID:      req.BranchID,
		StaffID:       req.StaffID,
		LeaveName:     req.LeaveName,
		IsCompanyWide: req.IsCompanyWide,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update series begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.FindBySeries(ctx, companyID, seriesID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, annualleaveerrors.ErrSeriesNotFound
	}
	before := append([]AnnualLeaveEntry(nil), rows...)

	for i := range rows {
		if err := p.apply(&rows[i]); err != nil {
			return nil, err
		}
		if err := validateEntry(rows[i]); err != nil {
			s.logger.Warn("update series validation failed", zap.String("series_id", seriesID), zap.Error(err))
			return nil, err
		}
	}

	fields := p.columns(rows[0])
	if len(fields) > 0 {
		if _, err := qtx.UpdateSeries(ctx, companyID, seriesID, fields); err != nil {
			s.logger.Error("update series persist failed", zap.String("series_id", seriesID), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update series commit failed", zap.String("series_id", seriesID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("update series success",
		zap.String("series_id", seriesID),
		zap.Int("rows", len(rows)),
	)

	s.publish(ctx, "update_series", companyID, append(before, rows...)...)
	return mapToListResponse(rows), nil
}

func (s *service) DeleteSeries(ctx context.Context, companyID, seriesID string) (int, error) {
	if _, err := uuid.Parse(seriesID); err != nil {
		return 0, annualleaveerrors.ErrSeriesNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete series begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.FindBySeries(ctx, companyID, seriesID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, annualleaveerrors.ErrSeriesNotFound
	}

	deleted, err := qtx.DeleteSeries(ctx, companyID, seriesID)
	if err != nil {
		s.logger.Error("delete series failed", zap.String("series_id", seriesID), zap.Error(err))
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	s.logger.Info("delete series success",
		zap.String("series_id", seriesID),
		zap.Int64("deleted", deleted),
	)

	s.publish(ctx, "delete_series", companyID, rows...)
	return int(deleted), nil
}

func (s *service) Export(ctx context.Context, companyID string, filter AnnualLeaveFilter) ([]byte, error) {
	entries, err := s.list(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	data, err := writeWorkbook(entries)
	if err != nil {
		s.logger.Error("export annual leave failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// publish announces a change covering every given row. The event names a
// branch only when all rows target that same branch.
func (s *service) publish(ctx context.Context, op, companyID string, rows ...AnnualLeaveEntry) {
	if len(rows) == 0 {
		return
	}

	event := events.LeaveMutatedEvent{
		Source:    events.SourceAnnualLeave,
		Operation: op,
		CompanyID: companyID,
		From:      rows[0].LeaveDate,
		To:        rows[0].LeaveDate,
	}

	var branch *uuid.UUID
	sameBranch := true
	for i, r := range rows {
		if r.LeaveDate.Before(event.From) {
			event.From = r.LeaveDate
		}
		if r.LeaveDate.After(event.To) {
			event.To = r.LeaveDate
		}
		switch {
		case r.IsCompanyWide || r.BranchID == nil:
			sameBranch = false
		case i == 0:
			branch = r.BranchID
		case branch == nil || *branch != *r.BranchID:
			sameBranch = false
		}
	}
	if sameBranch && branch != nil {
		v := branch.String()
		event.BranchID = &v
	}

	s.publisher.PublishLeaveMutated(ctx, event)
}

func buildEntry(companyID, actorID string, req CreateAnnualLeaveRequest) (AnnualLeaveEntry, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AnnualLeaveEntry{}, annualleaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AnnualLeaveEntry{}, annualleaveerrors.ErrInvalidActorID
	}
	leaveDate, err := parseDate(req.LeaveDate)
	if err != nil {
		return AnnualLeaveEntry{}, err
	}

	e := AnnualLeaveEntry{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		LeaveDate:         leaveDate,
		IsRecurring:       req.IsRecurring,
		IsWeeklyRecurring: req.IsWeeklyRecurring,
		CreatedBy:         actorUUID,
	}
	err = patch{
		BranchID:      req.BranchID,
		StaffID:       req.StaffID,
		LeaveName:     &req.LeaveName,
		IsCompanyWide: &req.IsCompanyWide,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}.apply(&e)
	return e, err
}

func validateEntry(e AnnualLeaveEntry) error {
	if strings.TrimSpace(e.LeaveName) == "" {
		return annualleaveerrors.ErrLeaveNameRequired
	}
	if !e.IsCompanyWide && e.BranchID == nil && e.StaffID == nil {
		return annualleaveerrors.ErrScopeRequired
	}

	if (e.StartTime == nil) != (e.EndTime == nil) {
		return annualleaveerrors.ErrTimeBoundsIncomplete
	}
	if e.StartTime == nil {
		return nil
	}
	start, err := parseClock(*e.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(*e.EndTime)
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return annualleaveerrors.ErrInvalidTimeRange
	}
	return nil
}

func parseClock(v string) (time.Time, error) {
	if len(v) != len(timeLayout) {
		return time.Time{}, annualleaveerrors.ErrInvalidTimeFormat
	}
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, annualleaveerrors.ErrInvalidTimeFormat
	}
	return t, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, annualleaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parseFilter(f AnnualLeaveFilter) (ListFilter, error) {
	lf := ListFilter{BranchID: f.BranchID}
	if f.From != "" {
		d, err := parseDate(f.From)
		if err != nil {
			return lf, err
		}
		lf.From = &d
	}
	if f.To != "" {
		d, err := parseDate(f.To)
		if err != nil {
			return lf, err
		}
		lf.To = &d
	}
	if lf.From != nil && lf.To != nil && lf.From.After(*lf.To) {
		return lf, annualleaveerrors.ErrInvalidDateRange
	}
	return lf, nil
}

func distinctIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, annualleaveerrors.ErrEmptyIDList
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, annualleaveerrors.ErrInvalidID
		}
		key := parsed.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, nil
}

func mapToResponse(e AnnualLeaveEntry) AnnualLeaveResponse {
	resp := AnnualLeaveResponse{
		ID:                e.ID.String(),
		CompanyID:         e.CompanyID.String(),
		LeaveDate:         e.LeaveDate.Format(dateLayout),
		LeaveName:         e.LeaveName,
		IsCompanyWide:     e.IsCompanyWide,
		IsRecurring:       e.IsRecurring,
		IsWeeklyRecurring: e.IsWeeklyRecurring,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		CreatedBy:         e.CreatedBy.String(),
	}
	if e.BranchID != nil {
		v := e.BranchID.String()
		resp.BranchID = &v
	}
	if e.StaffID != nil {
		v := e.StaffID.String()
		resp.StaffID = &v
	}

	m := e.Membership()
	resp.Membership = m.Kind
	if m.Kind == MembershipSeriesMember {
		sid, idx := m.SeriesID.String(), m.Index
		resp.SeriesID = &sid
		resp.SeriesIndex = &idx
	}
	return resp
}

func mapToListResponse(entries []AnnualLeaveEntry) []AnnualLeaveResponse {
	resp := make([]AnnualLeaveResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e)
	}
	return resp
}
