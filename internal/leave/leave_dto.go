package leave

const DateLayout = "2006-01-02"

type RecordLeaveRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	LeaveType  string  `json:"leave_type" binding:"required"`
	Color      *string `json:"color"`
}

type LeaveEventResponse struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	LeaveType  string  `json:"leave_type"`
	Color      *string `json:"color"`
	CreatedAt  string  `json:"created_at"`
}

// CalendarEntry is the shape the calendar widget expects.
type CalendarEntry struct {
	ID    int64   `json:"id"`
	Start string  `json:"start"`
	Title string  `json:"title"`
	Color *string `json:"color"`
}

type LeaveSummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	PL         int    `json:"pl"`
	CL         int    `json:"cl"`
	SL         int    `json:"sl"`
	EL         int    `json:"el"`
}
