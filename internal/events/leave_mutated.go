package events

import "time"

const (
	SourceLeaveRequest = "leave_request"
	SourceAnnualLeave  = "annual_leave"
)

// LeaveMutatedEvent tells read views that leave data for a company changed.
// BranchID is nil when the change is company-wide.
type LeaveMutatedEvent struct {
	Source    string
	Operation string
	CompanyID string
	BranchID  *string
	From      time.Time
	To        time.Time
}

// Years lists every calendar year touched by [From, To].
func (e LeaveMutatedEvent) Years() []int {
	if e.From.IsZero() || e.To.IsZero() {
		return nil
	}
	from, to := e.From.Year(), e.To.Year()
	if to < from {
		from, to = to, from
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}
