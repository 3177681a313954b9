package annualleave

type CreateAnnualLeaveRequest struct {
	BranchID          *string `json:"branch_id" binding:"omitempty,uuid"`
	StaffID           *string `json:"staff_id" binding:"omitempty,uuid"`
	LeaveDate         string  `json:"leave_date" binding:"required"`
	LeaveName         string  `json:"leave_name" binding:"required,max=150"`
	IsCompanyWide     bool    `json:"is_company_wide"`
	IsRecurring       bool    `json:"is_recurring"`
	IsWeeklyRecurring bool    `json:"is_weekly_recurring"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
}

// UpdateAnnualLeaveRequest changes only the fields that are set. Sending
// empty start_time and end_time clears the partial-day bounds; an empty
// branch_id or staff_id clears that scope. Ids are checked by the service.
type UpdateAnnualLeaveRequest struct {
	BranchID      *string `json:"branch_id"`
	StaffID       *string `json:"staff_id"`
	LeaveDate     *string `json:"leave_date"`
	LeaveName     *string `json:"leave_name" binding:"omitempty,max=150"`
	IsCompanyWide *bool   `json:"is_company_wide"`
	IsRecurring   *bool   `json:"is_recurring"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
}

// UpdateSeriesRequest is UpdateAnnualLeaveRequest without the date: every
// row of a series keeps its own week.
type UpdateSeriesRequest struct {
	BranchID      *string `json:"branch_id"`
	StaffID       *string `json:"staff_id"`
	LeaveName     *string `json:"leave_name" binding:"omitempty,max=150"`
	IsCompanyWide *bool   `json:"is_company_wide"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type AnnualLeaveFilter struct {
	BranchID string `form:"branch_id" binding:"omitempty,uuid"`
	From     string `form:"from"`
	To       string `form:"to"`
}

type AnnualLeaveResponse struct {
	ID                string  `json:"id"`
	CompanyID         string  `json:"company_id"`
	BranchID          *string `json:"branch_id,omitempty"`
	StaffID           *string `json:"staff_id,omitempty"`
	LeaveDate         string  `json:"leave_date"`
	LeaveName         string  `json:"leave_name"`
	IsCompanyWide     bool    `json:"is_company_wide"`
	IsRecurring       bool    `json:"is_recurring"`
	IsWeeklyRecurring bool    `json:"is_weekly_recurring"`
	StartTime         *string `json:"start_time,omitempty"`
	EndTime           *string `json:"end_time,omitempty"`
	Membership        string  `json:"membership"`
	SeriesID          *string `json:"series_id,omitempty"`
	SeriesIndex       *int    `json:"series_index,omitempty"`
	CreatedBy         string  `json:"created_by"`
}

type CreateAnnualLeaveResponse struct {
	Entry      AnnualLeaveResponse `json:"entry"`
	SeriesSize int                 `json:"series_size"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}
