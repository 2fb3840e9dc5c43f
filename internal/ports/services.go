package ports

import (
	"context"
	"time"

	"github.com/techmayne/photobot/internal/domain"
)

// Cache abstracts the tenant-config cache (Redis in production, local
// in-memory as fallback).
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}

// FAQService answers free-text questions against a tenant's FAQ set.
// A store failure degrades to a not-found verdict instead of an error so
// the dialog can fall through to lead capture.
type FAQService interface {
	Answer(ctx context.Context, clientID, query string) domain.FAQMatch
}

// LeadService captures a lead from a conversation's collected data. The
// insert is fatal on failure; notification fan-out is best-effort.
type LeadService interface {
	Capture(ctx context.Context, client *domain.Client, conversationID string, data domain.CollectedData) (*domain.Lead, error)
}

// EmailService sends transactional mail.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
	SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error
}

// Notifier delivers new-lead alerts to the tenant. Failures are logged by
// callers and never surfaced to the visitor.
type Notifier interface {
	NotifyNewLead(ctx context.Context, client *domain.Client, lead *domain.Lead) error
	NotifyNewClient(ctx context.Context, client *domain.Client) error
}

// SheetLogger appends onboarding rows to an external spreadsheet.
type SheetLogger interface {
	AppendClient(ctx context.Context, client *domain.Client, embedCode string) error
}
