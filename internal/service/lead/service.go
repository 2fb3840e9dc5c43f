package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/adapter/queue"
	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/observability/telemetry"
	"github.com/techmayne/photobot/internal/ports"
)

// SubjectLeadCreated is published once per captured lead.
const SubjectLeadCreated = "leads.created"

// Service packages a conversation's collected data into a persisted lead
// and fans out notifications. The insert is the source of truth: its
// failure propagates; everything after it is best-effort.
type Service struct {
	leads    ports.LeadRepository
	convRepo ports.ConversationRepository
	notifier ports.Notifier
	mq       queue.MessageQueue
	log      *zap.Logger
}

func NewService(leads ports.LeadRepository, convRepo ports.ConversationRepository, notifier ports.Notifier, mq queue.MessageQueue, log *zap.Logger) ports.LeadService {
	return &Service{
		leads:    leads,
		convRepo: convRepo,
		notifier: notifier,
		mq:       mq,
		log:      log,
	}
}

func (s *Service) Capture(ctx context.Context, client *domain.Client, conversationID string, data domain.CollectedData) (*domain.Lead, error) {
	lead := &domain.Lead{
		ID:              uuid.NewString(),
		ClientID:        client.ID,
		ConversationID:  conversationID,
		Name:            data[domain.FieldName],
		Email:           data[domain.FieldEmail],
		Phone:           data[domain.FieldPhone],
		EventType:       data[domain.FieldEventType],
		EventDate:       data[domain.FieldEventDate],
		Location:        data[domain.FieldLocation],
		CoverageRange:   data[domain.FieldCoverageRange],
		AdditionalNotes: data[domain.FieldAdditionalNotes],
		CreatedAt:       time.Now(),
	}

	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}
	telemetry.LeadsCaptured.Inc()

	// The conversation is retired; a returning visitor gets a fresh row.
	if err := s.convRepo.MarkCompleted(ctx, conversationID); err != nil {
		s.log.Error("Failed to mark conversation completed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
	}

	// Notification is fire-and-forget: a mail outage must not abort the
	// turn or roll back the lead.
	if err := s.notifier.NotifyNewLead(ctx, client, lead); err != nil {
		telemetry.NotificationFailures.Inc()
		s.log.Warn("Lead notification failed",
			zap.String("lead_id", lead.ID),
			zap.String("client_id", client.ID),
			zap.Error(err),
		)
	}

	s.publishCreated(lead)

	s.log.Info("Lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("client_id", client.ID),
		zap.String("conversation_id", conversationID),
	)
	return lead, nil
}

func (s *Service) publishCreated(lead *domain.Lead) {
	if s.mq == nil {
		return
	}
	payload, err := json.Marshal(lead)
	if err != nil {
		s.log.Error("Failed to marshal lead event", zap.Error(err))
		return
	}
	if err := s.mq.Publish(SubjectLeadCreated, payload); err != nil {
		s.log.Warn("Failed to publish lead event",
			zap.String("lead_id", lead.ID),
			zap.Error(err),
		)
	}
}
