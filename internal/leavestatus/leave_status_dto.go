package leavestatus

type StatusQuery struct {
	BranchID  string `form:"branch_id" binding:"required,uuid"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type ApprovedLeave struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	BranchID  string  `json:"branch_id"`
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	TotalDays int     `json:"total_days"`
	Reason    *string `json:"reason,omitempty"`
}

type AnnualLeaveEntry struct {
	ID            string  `json:"id"`
	BranchID      *string `json:"branch_id,omitempty"`
	StaffID       *string `json:"staff_id,omitempty"`
	LeaveDate     string  `json:"leave_date"`
	LeaveName     string  `json:"leave_name"`
	IsCompanyWide bool    `json:"is_company_wide"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
}

// StatusResponse keeps the two sources apart; callers decide how to
// combine them.
type StatusResponse struct {
	BranchID      string             `json:"branch_id"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	ApprovedLeave []ApprovedLeave    `json:"approved_leave"`
	AnnualLeave   []AnnualLeaveEntry `json:"annual_leave"`
}
