package calendar

const DateLayout = "2006-01-02"

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"`
}

type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"`
}
