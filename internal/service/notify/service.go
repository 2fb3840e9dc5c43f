package notify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

// testEmailPatterns guard the mail quota: tenants onboarded with demo or
// placeholder addresses never receive real notifications.
var testEmailPatterns = []string{"demo", "test", "example", "noreply"}

// Service delivers lead and onboarding alerts over email. All failures
// are returned to the caller, which treats them as non-fatal.
type Service struct {
	email      ports.EmailService
	adminEmail string
	log        *zap.Logger
}

func NewService(email ports.EmailService, adminEmail string, log *zap.Logger) ports.Notifier {
	return &Service{
		email:      email,
		adminEmail: adminEmail,
		log:        log,
	}
}

func (s *Service) NotifyNewLead(ctx context.Context, client *domain.Client, lead *domain.Lead) error {
	if client.NotificationEmail == "" {
		s.log.Warn("Client has no notification email, skipping lead alert",
			zap.String("client_id", client.ID),
		)
		return nil
	}
	if isTestRecipient(client.NotificationEmail) {
		s.log.Info("Test/demo recipient detected, skipping lead alert",
			zap.String("client_id", client.ID),
			zap.String("to", client.NotificationEmail),
		)
		return nil
	}

	data := map[string]interface{}{
		"Subject":         fmt.Sprintf("New Lead: %s - %s", lead.Name, lead.EventType),
		"BusinessName":    client.BusinessName,
		"AccentColor":     client.AccentColor,
		"Name":            lead.Name,
		"Email":           lead.Email,
		"Phone":           lead.Phone,
		"EventType":       lead.EventType,
		"EventDate":       lead.EventDate,
		"Location":        lead.Location,
		"CoverageRange":   lead.CoverageRange,
		"AdditionalNotes": lead.AdditionalNotes,
	}

	return s.email.SendTemplate(ctx, client.NotificationEmail, "lead_notification", data)
}

func (s *Service) NotifyNewClient(ctx context.Context, client *domain.Client) error {
	if s.adminEmail == "" {
		s.log.Warn("Admin email not configured, skipping onboarding alert")
		return nil
	}

	data := map[string]interface{}{
		"Subject":           fmt.Sprintf("New client: %s", client.BusinessName),
		"BusinessName":      client.BusinessName,
		"WebsiteURL":        client.WebsiteURL,
		"NotificationEmail": client.NotificationEmail,
		"PhoneNumber":       client.PhoneNumber,
		"ServiceArea":       client.ServiceArea,
		"StartingPrice":     client.StartingPrice,
		"ClientToken":       client.ClientToken,
	}

	return s.email.SendTemplate(ctx, s.adminEmail, "admin_new_client", data)
}

func isTestRecipient(addr string) bool {
	lowered := strings.ToLower(addr)
	for _, pattern := range testEmailPatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}
