package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/adapter/queue"
	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

// SubjectClientCreated is published once per onboarded tenant. Subscribers
// handle the admin alert and the spreadsheet row.
const SubjectClientCreated = "tenants.created"

var defaultServices = []string{"wedding", "engagement", "elopement"}

// Request is the onboarding form payload.
type Request struct {
	BusinessName      string      `json:"businessName"`
	ChatbotName       string      `json:"chatbotName"`
	WebsiteURL        string      `json:"websiteUrl"`
	BookingLink       string      `json:"bookingLink"`
	NotificationEmail string      `json:"notificationEmail"`
	PhoneNumber       string      `json:"phoneNumber"`
	ServiceArea       string      `json:"serviceArea"`
	StartingPrice     string      `json:"startingPrice"`
	GalleryTimeline   string      `json:"galleryTimeline"`
	ServicesOffered   []string    `json:"servicesOffered"`
	AccentColor       string      `json:"accentColor"`
	LogoURL           string      `json:"logoUrl"`
	CustomFAQs        []CustomFAQ `json:"customFaqs"`
}

// CustomFAQ is one question/answer pair from the onboarding form. Keywords
// arrive as a single comma-separated string.
type CustomFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Keywords string `json:"keywords"`
}

// Result is returned to the onboarding caller.
type Result struct {
	Client    *domain.Client `json:"client"`
	EmbedCode string         `json:"embedCode"`
}

// ClientCreatedEvent is the payload published on SubjectClientCreated.
type ClientCreatedEvent struct {
	ClientID  string `json:"client_id"`
	EmbedCode string `json:"embed_code"`
}

// Service provisions new tenants: client row, custom FAQ entries, widget
// embed code, and a creation event for asynchronous fan-out.
type Service struct {
	clients   ports.ClientRepository
	faqs      ports.FAQRepository
	mq        queue.MessageQueue
	widgetURL string
	log       *zap.Logger
}

func NewService(clients ports.ClientRepository, faqs ports.FAQRepository, mq queue.MessageQueue, widgetURL string, log *zap.Logger) *Service {
	return &Service{
		clients:   clients,
		faqs:      faqs,
		mq:        mq,
		widgetURL: widgetURL,
		log:       log,
	}
}

// Validate checks the required onboarding fields.
func (r *Request) Validate() error {
	if r.BusinessName == "" || r.WebsiteURL == "" || r.NotificationEmail == "" || r.PhoneNumber == "" {
		return fmt.Errorf("missing required fields: businessName, websiteUrl, notificationEmail, phoneNumber")
	}
	return nil
}

// Create provisions a tenant. The client insert is fatal; FAQ insert and
// event publish are logged but never abort onboarding.
func (s *Service) Create(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	client := &domain.Client{
		ID:                uuid.NewString(),
		ClientToken:       uuid.NewString(),
		BusinessName:      req.BusinessName,
		ChatbotName:       defaultString(req.ChatbotName, "PhotoBot AI"),
		WebsiteURL:        req.WebsiteURL,
		BookingLink:       req.BookingLink,
		NotificationEmail: req.NotificationEmail,
		PhoneNumber:       req.PhoneNumber,
		ServiceArea:       req.ServiceArea,
		StartingPrice:     req.StartingPrice,
		GalleryTimeline:   defaultString(req.GalleryTimeline, "4-6 weeks"),
		ServicesOffered:   defaultSlice(req.ServicesOffered, defaultServices),
		AccentColor:       defaultString(req.AccentColor, "#6366f1"),
		LogoURL:           req.LogoURL,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	if err := s.saveCustomFAQs(ctx, client.ID, req.CustomFAQs); err != nil {
		s.log.Error("Failed to save custom FAQs",
			zap.String("client_id", client.ID),
			zap.Error(err),
		)
	}

	embedCode := s.EmbedCode(client.ClientToken)
	s.publishCreated(client.ID, embedCode)

	s.log.Info("Client onboarded",
		zap.String("client_id", client.ID),
		zap.String("business_name", client.BusinessName),
	)

	return &Result{Client: client, EmbedCode: embedCode}, nil
}

// EmbedCode returns the script tag a tenant pastes into their site.
func (s *Service) EmbedCode(clientToken string) string {
	return fmt.Sprintf("<script\n  src=%q\n  data-client-token=%q\n></script>", s.widgetURL+"/widget/widget.js", clientToken)
}

func (s *Service) saveCustomFAQs(ctx context.Context, clientID string, faqs []CustomFAQ) error {
	if len(faqs) == 0 {
		return nil
	}

	now := time.Now()
	entries := make([]domain.FAQEntry, 0, len(faqs))
	for _, f := range faqs {
		if f.Question == "" || f.Answer == "" {
			continue
		}
		entries = append(entries, domain.FAQEntry{
			ID:        uuid.NewString(),
			ClientID:  clientID,
			Question:  f.Question,
			Answer:    f.Answer,
			Keywords:  splitKeywords(f.Keywords),
			IsCustom:  true,
			CreatedAt: now,
		})
	}
	if len(entries) == 0 {
		return nil
	}
	return s.faqs.SaveAll(ctx, entries)
}

func (s *Service) publishCreated(clientID, embedCode string) {
	if s.mq == nil {
		return
	}
	payload, err := json.Marshal(ClientCreatedEvent{ClientID: clientID, EmbedCode: embedCode})
	if err != nil {
		s.log.Error("Failed to marshal client event", zap.Error(err))
		return
	}
	if err := s.mq.Publish(SubjectClientCreated, payload); err != nil {
		s.log.Warn("Failed to publish client event",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
	}
}

func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultSlice(v, fallback []string) []string {
	if len(v) == 0 {
		return fallback
	}
	return v
}
