package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photobot_turns_processed_total",
		Help: "Total visitor turns processed by the dialog engine",
	})

	LeadsCaptured = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photobot_leads_captured_total",
		Help: "Total leads captured across all tenants",
	})

	FAQMatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photobot_faq_matches_total",
		Help: "FAQ match outcomes",
	}, []string{"result"})

	ConversationsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photobot_conversations_started_total",
		Help: "New conversation sessions created",
	})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photobot_notification_failures_total",
		Help: "Best-effort notification attempts that failed",
	})
)
