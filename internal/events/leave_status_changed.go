package events

import "time"

const LeaveDecisionTopic = "hr.leave.decision.v1"

// LeaveStatusChangedEvent is emitted whenever an application moves out
// of Pending so downstream consumers (payroll, notifications) can react.
type LeaveStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Status     string    `json:"status"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalDays  int       `json:"total_days"`
	OccurredAt time.Time `json:"occurred_at"`
}
