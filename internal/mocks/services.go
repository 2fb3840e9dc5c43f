package mocks

import (
	"context"

	"github.com/techmayne/photobot/internal/domain"
)

// MockFAQService is a mock implementation of FAQService
type MockFAQService struct {
	AnswerFunc func(ctx context.Context, clientID, query string) domain.FAQMatch
}

func (m *MockFAQService) Answer(ctx context.Context, clientID, query string) domain.FAQMatch {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, clientID, query)
	}
	return domain.FAQMatch{}
}

// MockLeadService is a mock implementation of LeadService
type MockLeadService struct {
	CaptureFunc func(ctx context.Context, client *domain.Client, conversationID string, data domain.CollectedData) (*domain.Lead, error)
}

func (m *MockLeadService) Capture(ctx context.Context, client *domain.Client, conversationID string, data domain.CollectedData) (*domain.Lead, error) {
	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx, client, conversationID, data)
	}
	return &domain.Lead{}, nil
}

// MockEmailService is a mock implementation of EmailService
type MockEmailService struct {
	SendFunc         func(ctx context.Context, to, subject, body string) error
	SendHTMLFunc     func(ctx context.Context, to, subject, htmlBody string) error
	SendTemplateFunc func(ctx context.Context, to, templateName string, data map[string]interface{}) error
}

func (m *MockEmailService) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
}

func (m *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendHTMLFunc != nil {
		return m.SendHTMLFunc(ctx, to, subject, htmlBody)
	}
	return nil
}

func (m *MockEmailService) SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error {
	if m.SendTemplateFunc != nil {
		return m.SendTemplateFunc(ctx, to, templateName, data)
	}
	return nil
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	NotifyNewLeadFunc   func(ctx context.Context, client *domain.Client, lead *domain.Lead) error
	NotifyNewClientFunc func(ctx context.Context, client *domain.Client) error
}

func (m *MockNotifier) NotifyNewLead(ctx context.Context, client *domain.Client, lead *domain.Lead) error {
	if m.NotifyNewLeadFunc != nil {
		return m.NotifyNewLeadFunc(ctx, client, lead)
	}
	return nil
}

func (m *MockNotifier) NotifyNewClient(ctx context.Context, client *domain.Client) error {
	if m.NotifyNewClientFunc != nil {
		return m.NotifyNewClientFunc(ctx, client)
	}
	return nil
}

// MockSheetLogger is a mock implementation of SheetLogger
type MockSheetLogger struct {
	AppendClientFunc func(ctx context.Context, client *domain.Client, embedCode string) error
}

func (m *MockSheetLogger) AppendClient(ctx context.Context, client *domain.Client, embedCode string) error {
	if m.AppendClientFunc != nil {
		return m.AppendClientFunc(ctx, client, embedCode)
	}
	return nil
}
