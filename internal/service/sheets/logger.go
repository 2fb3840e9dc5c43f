package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

// Logger appends onboarding rows to an external spreadsheet through a
// webhook (Google Apps Script or similar). The webhook is slow and
// occasionally flaky, so calls go through a circuit breaker. When no
// webhook URL is configured the logger is disabled and appends are no-ops.
type Logger struct {
	webhookURL string
	client     *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *zap.Logger
}

type clientRow struct {
	Timestamp         string `json:"timestamp"`
	BusinessName      string `json:"businessName"`
	WebsiteURL        string `json:"websiteUrl"`
	NotificationEmail string `json:"email"`
	PhoneNumber       string `json:"phone"`
	ServiceArea       string `json:"serviceArea"`
	StartingPrice     string `json:"startingPrice"`
	ClientToken       string `json:"clientToken"`
	EmbedCode         string `json:"embedCode"`
}

func NewLogger(webhookURL string, log *zap.Logger) ports.SheetLogger {
	settings := gobreaker.Settings{
		Name:        "sheets-webhook",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Sheets webhook breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &Logger{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		log:        log,
	}
}

// AppendClient posts one row describing a freshly onboarded client.
func (l *Logger) AppendClient(ctx context.Context, client *domain.Client, embedCode string) error {
	if l.webhookURL == "" {
		l.log.Debug("Sheets webhook not configured, skipping append")
		return nil
	}

	row := clientRow{
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		BusinessName:      client.BusinessName,
		WebsiteURL:        client.WebsiteURL,
		NotificationEmail: client.NotificationEmail,
		PhoneNumber:       client.PhoneNumber,
		ServiceArea:       client.ServiceArea,
		StartingPrice:     client.StartingPrice,
		ClientToken:       client.ClientToken,
		EmbedCode:         embedCode,
	}

	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet row: %w", err)
	}

	_, err = l.breaker.Execute(func() (interface{}, error) {
		return nil, l.post(ctx, payload)
	})
	if err != nil {
		l.log.Error("Failed to append client to sheet",
			zap.String("client_id", client.ID),
			zap.Error(err),
		)
		return fmt.Errorf("sheets append failed: %w", err)
	}

	l.log.Info("Client appended to sheet", zap.String("client_id", client.ID))
	return nil
}

func (l *Logger) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, body)
	}
	return nil
}
