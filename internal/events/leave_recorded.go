package events

import "time"

const LeaveRecordedTopic = "hr.leave.recorded.v1"

const EventTypeLeaveRecorded = "leave_recorded"

type LeaveRecordedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	LeaveEventID int64     `json:"leave_event_id"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"`
	LeaveType    string    `json:"leave_type"`
	Counted      bool      `json:"counted"`
	OccurredAt   time.Time `json:"occurred_at"`
}
