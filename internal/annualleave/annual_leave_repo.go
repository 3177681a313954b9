package annualleave

import (
	"context"
	"database/sql"
	"time"

	"go-care/internal/shared/dbtx"
	"go-care/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	BranchID string
	From     *time.Time
	To       *time.Time
}

//go:generate mockgen -source=annual_leave_repo.go -destination=mock/annual_leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, entries []AnnualLeaveEntry) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]AnnualLeaveEntry, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*AnnualLeaveEntry, error)
	FindByIDs(ctx context.Context, companyID string, ids []string) ([]AnnualLeaveEntry, error)
	FindBySeries(ctx context.Context, companyID, seriesID string) ([]AnnualLeaveEntry, error)
	FindForBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]AnnualLeaveEntry, error)
	Update(ctx context.Context, e *AnnualLeaveEntry) error
	UpdateSeries(ctx context.Context, companyID, seriesID string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, companyID, id string) error
	DeleteMany(ctx context.Context, companyID string, ids []string) (int64, error)
	DeleteSeries(ctx context.Context, companyID, seriesID string) (int64, error)
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

// CreateBatch writes every entry with a single INSERT.
func (r *repository) CreateBatch(ctx context.Context, entries []AnnualLeaveEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&entries).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]AnnualLeaveEntry, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if filter.BranchID != "" {
		q = q.Scopes(tenant.BranchOrCompanyWide(filter.BranchID))
	}
	if filter.From != nil {
		q = q.Where("leave_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("leave_date <= ?", *filter.To)
	}

	var entries []AnnualLeaveEntry
	err := q.Order("leave_date ASC").Order("leave_name ASC").Find(&entries).Error
	return entries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*AnnualLeaveEntry, error) {
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if r.tx != nil {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var e AnnualLeaveEntry
	if err := q.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByIDs(ctx context.Context, companyID string, ids []string) ([]AnnualLeaveEntry, error) {
	var entries []AnnualLeaveEntry
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindBySeries(ctx context.Context, companyID, seriesID string) ([]AnnualLeaveEntry, error) {
	var entries []AnnualLeaveEntry
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("series_id = ?", seriesID).
		Order("series_index ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindForBranchInRange(ctx context.Context, companyID, branchID string, from, to time.Time) ([]AnnualLeaveEntry, error) {
	var entries []AnnualLeaveEntry
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), tenant.BranchOrCompanyWide(branchID)).
		Where("leave_date >= ? AND leave_date <= ?", from, to).
		Order("leave_date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Update(ctx context.Context, e *AnnualLeaveEntry) error {
	return r.conn(ctx).Save(e).Error
}

func (r *repository) UpdateSeries(ctx context.Context, companyID, seriesID string, fields map[string]any) (int64, error) {
	res := r.conn(ctx).
		Model(&AnnualLeaveEntry{}).
		Scopes(tenant.Scope(companyID)).
		Where("series_id = ?", seriesID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&AnnualLeaveEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteMany(ctx context.Context, companyID string, ids []string) (int64, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Delete(&AnnualLeaveEntry{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteSeries(ctx context.Context, companyID, seriesID string) (int64, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("series_id = ?", seriesID).
		Delete(&AnnualLeaveEntry{})
	return res.RowsAffected, res.Error
}
