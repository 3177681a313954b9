package leave

type CreateLeaveRequest struct {
	StaffID   string  `json:"staff_id" binding:"omitempty,uuid"`
	BranchID  string  `json:"branch_id" binding:"required,uuid"`
	LeaveType string  `json:"leave_type" binding:"required,oneof=annual sick personal maternity paternity emergency"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Reason    *string `json:"reason"`
}

type ReviewLeaveRequest struct {
	Status      string  `json:"status" binding:"required,oneof=approved rejected"`
	ReviewNotes *string `json:"review_notes"`
}

type EditLeaveRequest struct {
	LeaveType string  `json:"leave_type" binding:"required,oneof=annual sick personal maternity paternity emergency"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Reason    *string `json:"reason"`
}

type CancelLeaveRequest struct {
	CancellationReason *string `json:"cancellation_reason"`
}

type LeaveFilter struct {
	BranchID string `form:"branch_id" binding:"omitempty,uuid"`
	StaffID  string `form:"staff_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
}

type LeaveResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	StaffID     string  `json:"staff_id"`
	BranchID    string  `json:"branch_id"`
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalDays   int     `json:"total_days"`
	Reason      *string `json:"reason,omitempty"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
	ReviewedAt  *string `json:"reviewed_at,omitempty"`
	ReviewedBy  *string `json:"reviewed_by,omitempty"`
	ReviewNotes *string `json:"review_notes,omitempty"`
}
