package leave

import (
	"context"
	"database/sql"
	"time"

	"go-care/internal/shared/dbtx"
	"go-care/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context, companyID string, filter LeaveFilter) ([]LeaveRequest, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	Delete(ctx context.Context, companyID, id string) error
	StaffBelongsToCompany(ctx context.Context, companyID, staffID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, companyID, staffID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	FindApprovedOverlapping(ctx context.Context, companyID, branchID string, from, to time.Time) ([]LeaveRequest, error)
	FindByBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter LeaveFilter) ([]LeaveRequest, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.BranchID != "" {
		q = q.Where("branch_id = ?", filter.BranchID)
	}
	if filter.StaffID != "" {
		q = q.Where("staff_id = ?", filter.StaffID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var leaves []LeaveRequest
	err := q.Order("requested_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if r.tx != nil {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var l LeaveRequest
	if err := q.First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&LeaveRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) StaffBelongsToCompany(ctx context.Context, companyID, staffID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("staff").
		Where("id = ?", staffID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, staffID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	q := r.conn(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(companyID)).
		Where("staff_id = ?", staffID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("end_date >= ? AND start_date <= ?", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

// FindApprovedOverlapping returns approved requests of a branch whose
// period intersects [from, to].
func (r *repository) FindApprovedOverlapping(ctx context.Context, companyID, branchID string, from, to time.Time) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("branch_id = ?", branchID).
		Where("status = ?", StatusApproved).
		Where("end_date >= ? AND start_date <= ?", from, to).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("branch_id = ?", branchID).
		Where("end_date >= ? AND start_date <= ?", from, to).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}
