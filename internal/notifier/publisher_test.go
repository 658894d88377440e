package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/metrics"
)

func deliveryCount(status string) float64 {
	var m dto.Metric
	if err := metrics.WebhookDeliveriesTotal.WithLabelValues(status).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestParseWebhookURLs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single", "https://hooks.slack.com/a", []string{"https://hooks.slack.com/a"}},
		{"several", "https://a, https://b,,https://c ", []string{"https://a", "https://b", "https://c"}},
		{"empty", "", nil},
		{"only separators", " , ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWebhookURLs(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected %q at %d, got %q", tt.expected[i], i, got[i])
				}
			}
		})
	}
}

func TestPublisher_Publish(t *testing.T) {
	var received atomic.Int32
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %q", r.Header.Get("Content-Type"))
		}
		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
		if payload.Text != "Some Show" {
			t.Errorf("Expected text 'Some Show', got %q", payload.Text)
		}
		received.Add(1)
		_, _ = io.WriteString(w, "ok")
	}))
	defer ok.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "no_service")
	}))
	defer failing.Close()

	successBefore := deliveryCount(metrics.StatusSuccess)
	failureBefore := deliveryCount(metrics.StatusFailure)

	publisher := NewPublisher(http.DefaultClient, []string{failing.URL, ok.URL})
	results := publisher.Publish(context.Background(), Format("Some Show", "", nil))

	if received.Load() != 2 {
		t.Errorf("Expected both webhooks to be called, got %d", received.Load())
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if results[0].URL != failing.URL || results[0].OK {
		t.Errorf("Expected first result to be the failing webhook, got %+v", results[0])
	}
	if results[0].StatusCode != http.StatusNotFound || results[0].Body != "no_service" {
		t.Errorf("Expected 404 no_service, got %d %q", results[0].StatusCode, results[0].Body)
	}
	var statusErr *apperrors.ErrUnexpectedStatus
	if !errors.As(results[0].Err, &statusErr) {
		t.Errorf("Expected *apperrors.ErrUnexpectedStatus, got %v", results[0].Err)
	}

	if results[1].URL != ok.URL || !results[1].OK || results[1].Body != "ok" || results[1].Err != nil {
		t.Errorf("Expected second result to be a success, got %+v", results[1])
	}

	if got := deliveryCount(metrics.StatusSuccess) - successBefore; got != 1 {
		t.Errorf("Expected 1 successful delivery recorded, got %v", got)
	}
	if got := deliveryCount(metrics.StatusFailure) - failureBefore; got != 1 {
		t.Errorf("Expected 1 failed delivery recorded, got %v", got)
	}
}

func TestPublisher_TransportFailureDoesNotStopOthers(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	var called atomic.Bool
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))
	defer ok.Close()

	results := NewPublisher(nil, []string{closedURL, ok.URL}).Publish(context.Background(), Format("x", "", nil))

	var transportErr *apperrors.ErrTransport
	if !errors.As(results[0].Err, &transportErr) {
		t.Errorf("Expected *apperrors.ErrTransport, got %v", results[0].Err)
	}
	if results[0].OK {
		t.Error("Expected the closed webhook to fail")
	}
	if !called.Load() || !results[1].OK {
		t.Errorf("Expected the second webhook to be delivered, got %+v", results[1])
	}
}

func TestPublisher_InvalidURL(t *testing.T) {
	results := NewPublisher(nil, []string{"://not-a-url"}).Publish(context.Background(), Format("x", "", nil))
	if len(results) != 1 || results[0].Err == nil || results[0].OK {
		t.Errorf("Expected an error result, got %+v", results)
	}
}
