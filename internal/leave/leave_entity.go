package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypePersonal  = "personal"
	TypeMaternity = "maternity"
	TypePaternity = "paternity"
	TypeEmergency = "emergency"
)

type LeaveRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_staff_leave_company_status"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index:idx_staff_leave_staff_dates"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index:idx_staff_leave_branch_dates"`

	LeaveType string    `gorm:"type:varchar(20);not null;default:'annual'"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_staff_leave_staff_dates;index:idx_staff_leave_branch_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_staff_leave_staff_dates;index:idx_staff_leave_branch_dates"`
	TotalDays int       `gorm:"type:int;not null"`
	Reason    *string   `gorm:"type:text"`

	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_staff_leave_company_status"`
	RequestedAt time.Time  `gorm:"not null"`
	ReviewedAt  *time.Time
	ReviewedBy  *uuid.UUID `gorm:"type:uuid"`
	ReviewNotes *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_staff_leave_deleted_at"`
}

func (LeaveRequest) TableName() string { return "staff_leave_requests" }

// IsTerminal reports whether no further status change is allowed.
func IsTerminal(status string) bool {
	return status == StatusRejected || status == StatusCancelled
}

func isAllowedStatusTransition(current, target string) bool {
	switch current {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected || target == StatusCancelled
	case StatusApproved:
		return target == StatusCancelled
	default:
		return false
	}
}
