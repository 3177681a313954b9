package events

import "time"

const LeaveNotificationTopic = "care.leave.notification.v1"

const (
	LeaveActionSubmitted = "submitted"
	LeaveActionApproved  = "approved"
	LeaveActionRejected  = "rejected"
)

// LeaveNotificationEvent is the payload posted to the notification function.
type LeaveNotificationEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	CompanyID      string    `json:"company_id"`
	LeaveRequestID string    `json:"leave_request_id"`
	Action         string    `json:"action"`
	StaffID        string    `json:"staff_id"`
	BranchID       string    `json:"branch_id"`
	LeaveType      string    `json:"leave_type"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	ReviewerID     *string   `json:"reviewer_id,omitempty"`
	ReviewNotes    *string   `json:"review_notes,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
