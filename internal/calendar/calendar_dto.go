package calendar

type CalendarQuery struct {
	BranchID string `form:"branch_id" binding:"required,uuid"`
	Year     int    `form:"year"`
}

type LeaveItem struct {
	LeaveRequestID string `json:"leave_request_id"`
	StaffID        string `json:"staff_id"`
	LeaveType      string `json:"leave_type"`
}

type HolidayItem struct {
	EntryID       string  `json:"entry_id"`
	LeaveName     string  `json:"leave_name"`
	IsCompanyWide bool    `json:"is_company_wide"`
	StaffID       *string `json:"staff_id,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
}

type Day struct {
	Date     string        `json:"date"`
	Leave    []LeaveItem   `json:"leave,omitempty"`
	Holidays []HolidayItem `json:"holidays,omitempty"`
}

// OrganizationCalendar lists only the days of the year that have approved
// leave or an annual leave entry.
type OrganizationCalendar struct {
	CompanyID string `json:"company_id"`
	BranchID  string `json:"branch_id"`
	Year      int    `json:"year"`
	Days      []Day  `json:"days"`
}

type Stats struct {
	CompanyID            string         `json:"company_id"`
	BranchID             string         `json:"branch_id"`
	Year                 int            `json:"year"`
	RequestsByStatus     map[string]int `json:"requests_by_status"`
	RequestsByType       map[string]int `json:"requests_by_type"`
	ApprovedBusinessDays int            `json:"approved_business_days"`
	AnnualLeaveEntries   int            `json:"annual_leave_entries"`
}
