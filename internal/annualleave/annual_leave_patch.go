package annualleave

import (
	"strings"

	annualleaveerrors "go-care/internal/annualleave/errors"

	"github.com/google/uuid"
)

// patch holds the optional fields shared by single-row and series updates.
// An empty branch_id or staff_id clears it; empty times clear the bound.
type patch struct {
	BranchID      *string
	StaffID       *string
	LeaveName     *string
	IsCompanyWide *bool
	IsRecurring   *bool
	StartTime     *string
	EndTime       *string
}

func (p patch) apply(e *AnnualLeaveEntry) error {
	if p.BranchID != nil {
		id, err := optionalUUID(*p.BranchID, annualleaveerrors.ErrInvalidBranchID)
		if err != nil {
			return err
		}
		e.BranchID = id
	}
	if p.StaffID != nil {
		id, err := optionalUUID(*p.StaffID, annualleaveerrors.ErrInvalidStaffID)
		if err != nil {
			return err
		}
		e.StaffID = id
	}
	if p.LeaveName != nil {
		e.LeaveName = strings.TrimSpace(*p.LeaveName)
	}
	if p.IsCompanyWide != nil {
		e.IsCompanyWide = *p.IsCompanyWide
	}
	if p.IsRecurring != nil {
		e.IsRecurring = *p.IsRecurring
	}
	if p.StartTime != nil {
		e.StartTime = optionalString(*p.StartTime)
	}
	if p.EndTime != nil {
		e.EndTime = optionalString(*p.EndTime)
	}
	return nil
}

// columns lists the database columns p touches, valued from e.
func (p patch) columns(e AnnualLeaveEntry) map[string]any {
	fields := map[string]any{}
	if p.BranchID != nil {
		fields["branch_id"] = e.BranchID
	}
	if p.StaffID != nil {
		fields["staff_id"] = e.StaffID
	}
	if p.LeaveName != nil {
		fields["leave_name"] = e.LeaveName
	}
	if p.IsCompanyWide != nil {
		fields["is_company_wide"] = e.IsCompanyWide
	}
	if p.IsRecurring != nil {
		fields["is_recurring"] = e.IsRecurring
	}
	if p.StartTime != nil || p.EndTime != nil {
		fields["start_time"] = e.StartTime
		fields["end_time"] = e.EndTime
	}
	return fields
}

func optionalUUID(v string, invalid error) (*uuid.UUID, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, invalid
	}
	return &id, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
