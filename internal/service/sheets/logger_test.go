package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func testClient() *domain.Client {
	return &domain.Client{
		ID:                "client-1",
		ClientToken:       "token-1",
		BusinessName:      "Luna Photography",
		NotificationEmail: "owner@lunaphoto.com",
	}
}

func TestAppendClient_PostsRow(t *testing.T) {
	// Arrange
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := NewLogger(server.URL, newTestLogger())

	// Act
	err := logger.AppendClient(context.Background(), testClient(), "<script></script>")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if received["businessName"] != "Luna Photography" {
		t.Errorf("unexpected row payload: %v", received)
	}
	if received["clientToken"] != "token-1" {
		t.Errorf("expected client token in row, got %v", received)
	}
	if received["embedCode"] != "<script></script>" {
		t.Errorf("expected embed code in row, got %v", received)
	}
}

func TestAppendClient_DisabledWithoutWebhookURL(t *testing.T) {
	logger := NewLogger("", newTestLogger())

	if err := logger.AppendClient(context.Background(), testClient(), ""); err != nil {
		t.Fatalf("expected no-op without webhook url, got %v", err)
	}
}

func TestAppendClient_ErrorStatusFails(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := NewLogger(server.URL, newTestLogger())

	// Act
	err := logger.AppendClient(context.Background(), testClient(), "")

	// Assert
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestAppendClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	// Arrange
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := NewLogger(server.URL, newTestLogger())
	ctx := context.Background()

	// Act: trip the breaker, then call once more.
	for i := 0; i < 3; i++ {
		logger.AppendClient(ctx, testClient(), "")
	}
	err := logger.AppendClient(ctx, testClient(), "")

	// Assert
	if err == nil {
		t.Fatal("expected open breaker to reject the call")
	}
	if calls != 3 {
		t.Errorf("expected no request once the breaker opened, got %d calls", calls)
	}
}
