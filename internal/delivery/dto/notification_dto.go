package dto

// NotificationResponse is synthesized at read time and never persisted, so
// IsRead is always false on fetch and "mark as read" succeeds without effect.
type NotificationResponse struct {
	ID            string `json:"id"`
	Message       string `json:"message"`
	Type          string `json:"type"`     // appointment | alert | info | reminder
	Priority      string `json:"priority"` // high | medium | low
	Date          string `json:"date"`
	UserEmail     string `json:"user_email,omitempty"`
	UserName      string `json:"user_name,omitempty"`
	AppointmentID string `json:"appointment_id,omitempty"`
	IsRead        bool   `json:"is_read"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
