package domain

import (
	"time"
)

// State is a step in the scripted dialog. The engine switches on it
// exhaustively; unknown values fall into a defensive reset branch.
type State string

const (
	StateWelcome               State = "welcome"
	StateMainMenu              State = "main_menu"
	StateCollectEventType      State = "collect_event_type"
	StateCollectOtherEventType State = "collect_other_event_type"
	StateCollectDate           State = "collect_date"
	StateCollectLocation       State = "collect_location"
	StateCollectCoverage       State = "collect_coverage"
	StateConfirmContactReuse   State = "confirm_contact_reuse"
	StateCollectName           State = "collect_name"
	StateCollectEmail          State = "collect_email"
	StateCollectPhone          State = "collect_phone"
	StateFAQQuestion           State = "faq_question"
	StateCompletion            State = "completion"
	StateClosed                State = "closed"
)

// Well-known collected-data keys.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldEventType       = "event_type"
	FieldEventDate       = "event_date"
	FieldLocation        = "location"
	FieldCoverageRange   = "coverage_range"
	FieldAdditionalNotes = "additional_notes"
)

// CollectedData is the flat key-value bag accumulated across a conversation.
type CollectedData map[string]string

// HasContactInfo reports whether name and email have both been collected.
func (d CollectedData) HasContactInfo() bool {
	return d[FieldName] != "" && d[FieldEmail] != ""
}

// ClearContactInfo removes exactly the three contact keys, leaving event
// details untouched.
func (d CollectedData) ClearContactInfo() {
	delete(d, FieldName)
	delete(d, FieldEmail)
	delete(d, FieldPhone)
}

// Clone returns a shallow copy so a turn can mutate its own bag.
func (d CollectedData) Clone() CollectedData {
	out := make(CollectedData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Conversation is one visitor's session with a tenant's widget. A visitor
// has at most one open (completed=false) conversation per tenant; a new row
// is created when they return after a lead was captured.
type Conversation struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	ClientID      string        `json:"client_id" gorm:"index:idx_conversations_open"`
	VisitorID     string        `json:"visitor_id" gorm:"index:idx_conversations_open"`
	CurrentState  State         `json:"current_state"`
	CollectedData CollectedData `json:"collected_data" gorm:"serializer:json"`
	Completed     bool          `json:"completed" gorm:"index:idx_conversations_open"`
	StartedAt     time.Time     `json:"started_at"`
	LastMessageAt time.Time     `json:"last_message_at"`
}
