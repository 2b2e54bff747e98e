package events

import "time"

// EmployeeCreatedTopic carries the lifecycle of employee records. The leave
// consumer seeds an empty summary from it.
const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

const EventTypeEmployeeCreated = "employee_created"

type EmployeeCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	ID          int64     `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Name        string    `json:"name"`
	Designation *string   `json:"designation,omitempty"`
	Team        *string   `json:"team,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
