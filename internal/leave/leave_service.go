package leave

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-care/internal/events"
	leaveerrors "go-care/internal/leave/errors"
	"go-care/internal/notification"
	"go-care/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, companyID string, filter LeaveFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error)
	Review(ctx context.Context, companyID, actorID, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	Edit(ctx context.Context, companyID, actorID, id string, req EditLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, actorID, id string, req CancelLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	dispatcher notification.Dispatcher
	publisher  events.LeaveMutatedPublisher
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithNotifier(db, repo, notification.NoopDispatcher(), events.NoopPublisher(), logger...)
}

func NewServiceWithNotifier(
	db *sql.DB,
	repo Repository,
	dispatcher notification.Dispatcher,
	publisher events.LeaveMutatedPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if dispatcher == nil {
		dispatcher = notification.NoopDispatcher()
	}
	if publisher == nil {
		publisher = events.NoopPublisher()
	}
	return &service{db: db, repo: repo, dispatcher: dispatcher, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("staff_id", req.StaffID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	in, err := validateCreateRequest(companyID, actorID, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	staffID := in.staffID.String()
	belongs, err := qtx.StaffBelongsToCompany(ctx, companyID, staffID)
	if err != nil {
		s.logger.Error("create leave staff company check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !belongs {
		return LeaveResponse{}, leaveerrors.ErrStaffNotInCompany
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, staffID, in.startDate, in.endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("company_id", companyID),
			zap.String("staff_id", staffID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		CompanyID:   in.companyID,
		StaffID:     in.staffID,
		BranchID:    in.branchID,
		LeaveType:   req.LeaveType,
		StartDate:   in.startDate,
		EndDate:     in.endDate,
		TotalDays:   in.totalDays,
		Reason:      req.Reason,
		Status:      StatusPending,
		RequestedAt: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("company_id", companyID),
		zap.String("staff_id", staffID),
		zap.Int("total_days", l.TotalDays),
	)

	s.notify(ctx, l, events.LeaveActionSubmitted)
	s.publishMutation(ctx, "create", l)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter LeaveFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Review(ctx context.Context, companyID, actorID, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("review leave requested",
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}
	actorUUID, err := parseIDs(companyID, actorID)
	if err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.mutate(ctx, companyID, id, func(l *LeaveRequest) error {
		if l.Status != StatusPending {
			s.logger.Warn("review leave invalid transition",
				zap.String("leave_id", id),
				zap.String("from_status", l.Status),
				zap.String("to_status", req.Status),
			)
			return leaveerrors.ErrInvalidStatusTransition
		}

		now := time.Now().UTC()
		l.Status = req.Status
		l.ReviewedAt = &now
		l.ReviewedBy = &actorUUID
		if req.ReviewNotes != nil && strings.TrimSpace(*req.ReviewNotes) != "" {
			l.ReviewNotes = appendNote(l.ReviewNotes, strings.TrimSpace(*req.ReviewNotes))
		}
		return nil
	})
	if err != nil {
		return LeaveResponse{}, err
	}
	s.logger.Info("review leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
	)

	s.notify(ctx, l, req.Status)
	s.publishMutation(ctx, "review", l)

	return mapToResponse(*l), nil
}

func (s *service) Edit(ctx context.Context, companyID, actorID, id string, req EditLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("edit leave requested",
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
	)

	if _, err := parseIDs(companyID, actorID); err != nil {
		return LeaveResponse{}, err
	}
	if !isValidLeaveType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, endDate, totalDays, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("edit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	var previous LeaveRequest
	l, err := s.mutateWithRepo(ctx, companyID, id, func(qtx Repository, l *LeaveRequest) error {
		if IsTerminal(l.Status) {
			return leaveerrors.ErrLeaveFinalized
		}

		overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, l.StaffID.String(), startDate, endDate, &id)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}

		previous = *l
		l.LeaveType = req.LeaveType
		l.StartDate = startDate
		l.EndDate = endDate
		l.TotalDays = totalDays
		l.Reason = req.Reason
		l.ReviewNotes = appendNote(l.ReviewNotes, "[Edited on "+time.Now().UTC().Format(time.RFC3339)+"]")

		// an approval covers the dates the reviewer saw; new dates go back to review
		if l.Status == StatusApproved {
			l.Status = StatusPending
			l.ReviewedAt = nil
			l.ReviewedBy = nil
		}
		return nil
	})
	if err != nil {
		return LeaveResponse{}, err
	}
	s.logger.Info("edit leave success",
		zap.String("leave_id", id),
		zap.Int("total_days", l.TotalDays),
	)

	// the old period changes too, so the span covers both
	span := *l
	if previous.StartDate.Before(span.StartDate) {
		span.StartDate = previous.StartDate
	}
	if previous.EndDate.After(span.EndDate) {
		span.EndDate = previous.EndDate
	}
	if previous.Status == StatusApproved {
		s.notify(ctx, l, events.LeaveActionSubmitted)
	}
	s.publishMutation(ctx, "edit", &span)

	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, companyID, actorID, id string, req CancelLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
	)

	if _, err := parseIDs(companyID, actorID); err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.mutate(ctx, companyID, id, func(l *LeaveRequest) error {
		if !isAllowedStatusTransition(l.Status, StatusCancelled) {
			s.logger.Warn("cancel leave invalid transition",
				zap.String("leave_id", id),
				zap.String("from_status", l.Status),
			)
			return leaveerrors.ErrInvalidStatusTransition
		}

		marker := "[Cancelled on " + time.Now().UTC().Format(time.RFC3339) + "]"
		if req.CancellationReason != nil && *req.CancellationReason != "" {
			marker += ": " + *req.CancellationReason
		}
		l.Status = StatusCancelled
		l.ReviewNotes = appendNote(l.ReviewNotes, marker)
		return nil
	})
	if err != nil {
		return LeaveResponse{}, err
	}
	s.logger.Info("cancel leave success", zap.String("leave_id", id))

	s.publishMutation(ctx, "cancel", l)

	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete leave failed", zap.String("leave_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete leave success", zap.String("leave_id", id))

	s.publishMutation(ctx, "delete", l)
	return nil
}

func (s *service) mutate(ctx context.Context, companyID, id string, apply func(l *LeaveRequest) error) (*LeaveRequest, error) {
	return s.mutateWithRepo(ctx, companyID, id, func(_ Repository, l *LeaveRequest) error {
		return apply(l)
	})
}

// mutateWithRepo loads one request inside a transaction, lets apply change
// it and saves it. Nothing is written when apply fails.
func (s *service) mutateWithRepo(ctx context.Context, companyID, id string, apply func(qtx Repository, l *LeaveRequest) error) (*LeaveRequest, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave begin tx failed", zap.String("leave_id", id), zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := apply(qtx, l); err != nil {
		return nil, err
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return nil, err
	}
	return l, nil
}

func (s *service) notify(ctx context.Context, l *LeaveRequest, action string) {
	event := events.LeaveNotificationEvent{
		RequestID:      contextutil.GetRequestID(ctx),
		CompanyID:      l.CompanyID.String(),
		LeaveRequestID: l.ID.String(),
		Action:         action,
		StaffID:        l.StaffID.String(),
		BranchID:       l.BranchID.String(),
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate.Format(dateLayout),
		EndDate:        l.EndDate.Format(dateLayout),
		ReviewNotes:    l.ReviewNotes,
		OccurredAt:     time.Now().UTC(),
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		event.ReviewerID = &v
	}
	s.dispatcher.DispatchLeave(ctx, event)
}

func (s *service) publishMutation(ctx context.Context, op string, l *LeaveRequest) {
	branchID := l.BranchID.String()
	s.publisher.PublishLeaveMutated(ctx, events.LeaveMutatedEvent{
		Source:    events.SourceLeaveRequest,
		Operation: op,
		CompanyID: l.CompanyID.String(),
		BranchID:  &branchID,
		From:      l.StartDate,
		To:        l.EndDate,
	})
}

type createInput struct {
	companyID uuid.UUID
	staffID   uuid.UUID
	branchID  uuid.UUID
	startDate time.Time
	endDate   time.Time
	totalDays int
}

func validateCreateRequest(companyID, actorID string, req CreateLeaveRequest) (createInput, error) {
	var in createInput

	actorUUID, err := parseIDs(companyID, actorID)
	if err != nil {
		return in, err
	}
	in.companyID = uuid.MustParse(companyID)

	in.staffID = actorUUID
	if req.StaffID != "" {
		if in.staffID, err = uuid.Parse(req.StaffID); err != nil {
			return in, leaveerrors.ErrInvalidStaffID
		}
	}
	if in.branchID, err = uuid.Parse(req.BranchID); err != nil {
		return in, leaveerrors.ErrInvalidBranchID
	}
	if !isValidLeaveType(req.LeaveType) {
		return in, leaveerrors.ErrInvalidLeaveType
	}

	in.startDate, in.endDate, in.totalDays, err = parsePeriod(req.StartDate, req.EndDate)
	return in, err
}

// parseIDs checks the tenant and actor ids and returns the parsed actor.
func parseIDs(companyID, actorID string) (uuid.UUID, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return uuid.Nil, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, leaveerrors.ErrInvalidActorID
	}
	return actorUUID, nil
}

func parsePeriod(start, end string) (time.Time, time.Time, int, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}

	totalDays := BusinessDays(startDate, endDate)
	if totalDays <= 0 {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrNoBusinessDays
	}
	return startDate, endDate, totalDays, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func isValidLeaveType(t string) bool {
	switch t {
	case TypeAnnual, TypeSick, TypePersonal, TypeMaternity, TypePaternity, TypeEmergency:
		return true
	}
	return false
}

func appendNote(notes *string, note string) *string {
	if notes == nil || *notes == "" {
		return &note
	}
	v := *notes + "\n" + note
	return &v
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		CompanyID:   l.CompanyID.String(),
		StaffID:     l.StaffID.String(),
		BranchID:    l.BranchID.String(),
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		TotalDays:   l.TotalDays,
		Reason:      l.Reason,
		Status:      l.Status,
		RequestedAt: l.RequestedAt.Format(time.RFC3339),
		ReviewNotes: l.ReviewNotes,
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
