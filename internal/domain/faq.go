package domain

import (
	"time"
)

// FAQEntry is a per-tenant question/answer pair. Keywords may be empty;
// question and answer are always non-empty.
type FAQEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ClientID  string    `json:"client_id" gorm:"index"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Keywords  []string  `json:"keywords" gorm:"serializer:json"`
	IsCustom  bool      `json:"is_custom"`
	CreatedAt time.Time `json:"created_at"`
}

// FAQMatch is the matcher verdict for one free-text query.
type FAQMatch struct {
	Found    bool   `json:"found"`
	Answer   string `json:"answer,omitempty"`
	Question string `json:"question,omitempty"`
}
