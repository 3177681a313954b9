package annualleave

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySeriesLength is how many weekly rows a recurring entry expands to.
const WeeklySeriesLength = 52

const (
	MembershipSingle       = "single"
	MembershipSeriesMember = "series_member"
)

type AnnualLeaveEntry struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;index:idx_annual_leave_company_date"`
	BranchID  *uuid.UUID `gorm:"type:uuid;index:idx_annual_leave_branch_date"`
	StaffID   *uuid.UUID `gorm:"type:uuid"`

	LeaveDate time.Time `gorm:"type:date;not null;index:idx_annual_leave_company_date;index:idx_annual_leave_branch_date"`
	LeaveName string    `gorm:"type:varchar(150);not null"`

	IsCompanyWide     bool    `gorm:"not null;default:false"`
	IsRecurring       bool    `gorm:"not null;default:false"`
	IsWeeklyRecurring bool    `gorm:"not null;default:false"`
	StartTime         *string `gorm:"type:varchar(5)"`
	EndTime           *string `gorm:"type:varchar(5)"`

	SeriesID    *uuid.UUID `gorm:"type:uuid;index:idx_annual_leave_series"`
	SeriesIndex *int

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AnnualLeaveEntry) TableName() string { return "annual_leave_calendar" }

// Membership tells whether a row stands alone or belongs to a weekly series.
type Membership struct {
	Kind     string
	SeriesID uuid.UUID
	Index    int
}

func (e AnnualLeaveEntry) Membership() Membership {
	if e.SeriesID == nil || e.SeriesIndex == nil {
		return Membership{Kind: MembershipSingle}
	}
	return Membership{Kind: MembershipSeriesMember, SeriesID: *e.SeriesID, Index: *e.SeriesIndex}
}

// ExpandWeekly turns base into WeeklySeriesLength rows one week apart that
// share a fresh series id. Row k falls on base.LeaveDate + 7k days.
func ExpandWeekly(base AnnualLeaveEntry) []AnnualLeaveEntry {
	seriesID := uuid.New()
	rows := make([]AnnualLeaveEntry, WeeklySeriesLength)
	for k := range rows {
		row := base
		row.ID = uuid.New()
		row.LeaveDate = base.LeaveDate.AddDate(0, 0, 7*k)
		row.IsWeeklyRecurring = true
		sid, idx := seriesID, k
		row.SeriesID = &sid
		row.SeriesIndex = &idx
		rows[k] = row
	}
	return rows
}
