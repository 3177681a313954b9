package leavestatus

import (
	"context"
	"time"

	"go-care/internal/annualleave"
	"go-care/internal/leave"
	leavestatuserrors "go-care/internal/leavestatus/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type LeaveReader interface {
	FindApprovedOverlapping(ctx context.Context, companyID, branchID string, from, to time.Time) ([]leave.LeaveRequest, error)
}

type AnnualLeaveReader interface {
	FindForBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]annualleave.AnnualLeaveEntry, error)
}

type Service interface {
	Query(ctx context.Context, companyID string, q StatusQuery) (StatusResponse, error)
}

type service struct {
	leaves   LeaveReader
	holidays AnnualLeaveReader
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(leaves LeaveReader, holidays AnnualLeaveReader, logger ...*zap.Logger) Service {
	return NewServiceWithClock(leaves, holidays, time.Now, logger...)
}

func NewServiceWithClock(leaves LeaveReader, holidays AnnualLeaveReader, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavestatus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavestatus.service")
	}
	return &service{leaves: leaves, holidays: holidays, now: now, logger: l}
}

// Query lists approved leave of the branch overlapping the range and the
// annual leave entries of the branch or the whole company inside it.
func (s *service) Query(ctx context.Context, companyID string, q StatusQuery) (StatusResponse, error) {
	if _, err := uuid.Parse(q.BranchID); err != nil {
		return StatusResponse{}, leavestatuserrors.ErrInvalidBranchID
	}
	from, to, err := resolveRange(q.StartDate, q.EndDate, s.now().UTC())
	if err != nil {
		return StatusResponse{}, err
	}

	s.logger.Debug("leave status query",
		zap.String("company_id", companyID),
		zap.String("branch_id", q.BranchID),
		zap.Time("from", from),
		zap.Time("to", to),
	)

	approved, err := s.leaves.FindApprovedOverlapping(ctx, companyID, q.BranchID, from, to)
	if err != nil {
		s.logger.Error("leave status approved lookup failed", zap.Error(err))
		return StatusResponse{}, err
	}
	entries, err := s.holidays.FindForBranchInRange(ctx, companyID, q.BranchID, from, to)
	if err != nil {
		s.logger.Error("leave status annual leave lookup failed", zap.Error(err))
		return StatusResponse{}, err
	}

	resp := StatusResponse{
		BranchID:      q.BranchID,
		StartDate:     from.Format(dateLayout),
		EndDate:       to.Format(dateLayout),
		ApprovedLeave: make([]ApprovedLeave, 0, len(approved)),
		AnnualLeave:   make([]AnnualLeaveEntry, 0, len(entries)),
	}
	for _, l := range approved {
		resp.ApprovedLeave = append(resp.ApprovedLeave, mapApproved(l))
	}
	for _, e := range entries {
		resp.AnnualLeave = append(resp.AnnualLeave, mapEntry(e))
	}
	return resp, nil
}

// resolveRange fills missing bounds. With no bounds the range is the
// calendar year of now; a lone bound is completed within its own year.
func resolveRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error

	if start != "" {
		if from, err = time.Parse(dateLayout, start); err != nil {
			return from, to, leavestatuserrors.ErrInvalidDateFormat
		}
	}
	if end != "" {
		if to, err = time.Parse(dateLayout, end); err != nil {
			return from, to, leavestatuserrors.ErrInvalidDateFormat
		}
	}

	switch {
	case start == "" && end == "":
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	case start == "":
		from = time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case end == "":
		to = time.Date(from.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	if from.After(to) {
		return from, to, leavestatuserrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func mapApproved(l leave.LeaveRequest) ApprovedLeave {
	return ApprovedLeave{
		ID:        l.ID.String(),
		StaffID:   l.StaffID.String(),
		BranchID:  l.BranchID.String(),
		LeaveType: l.LeaveType,
		StartDate: l.StartDate.Format(dateLayout),
		EndDate:   l.EndDate.Format(dateLayout),
		TotalDays: l.TotalDays,
		Reason:    l.Reason,
	}
}

func mapEntry(e annualleave.AnnualLeaveEntry) AnnualLeaveEntry {
	out := AnnualLeaveEntry{
		ID:            e.ID.String(),
		LeaveDate:     e.LeaveDate.Format(dateLayout),
		LeaveName:     e.LeaveName,
		IsCompanyWide: e.IsCompanyWide,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
	}
	if e.BranchID != nil {
		v := e.BranchID.String()
		out.BranchID = &v
	}
	if e.StaffID != nil {
		v := e.StaffID.String()
		out.StaffID = &v
	}
	return out
}
