package domain

import (
	"time"
)

// Lead is a captured prospective-client contact record. Created exactly
// once per completed capture flow; notification delivery is best-effort.
type Lead struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	ClientID        string    `json:"client_id" gorm:"index"`
	ConversationID  string    `json:"conversation_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	EventType       string    `json:"event_type,omitempty"`
	EventDate       string    `json:"event_date,omitempty"`
	Location        string    `json:"location,omitempty"`
	CoverageRange   string    `json:"coverage_range,omitempty"`
	AdditionalNotes string    `json:"additional_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
