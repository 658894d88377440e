package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/metrics"
	"github.com/Belphemur/TVShowInfo/internal/reporting"
)

// maxResponseBody caps how much of a webhook answer is kept for the operator
const maxResponseBody = 64 << 10

// DeliveryResult is the outcome of posting a payload to one webhook
type DeliveryResult struct {
	URL        string
	OK         bool
	StatusCode int
	Body       string
	Err        error
}

// Publisher posts payloads to a fixed set of webhooks
type Publisher struct {
	httpClient *http.Client
	urls       []string
}

// ParseWebhookURLs splits a comma separated list of webhooks, dropping blank entries.
func ParseWebhookURLs(list string) []string {
	var urls []string
	for _, part := range strings.Split(list, ",") {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// NewPublisher creates a publisher for the given webhooks
func NewPublisher(httpClient *http.Client, urls []string) *Publisher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Publisher{httpClient: httpClient, urls: urls}
}

// Publish posts the payload to every webhook concurrently. A failing webhook never prevents
// delivery to the others. Results are in the order the webhooks were given.
func (p *Publisher) Publish(ctx context.Context, payload Payload) []DeliveryResult {
	results := make([]DeliveryResult, len(p.urls))

	body, err := json.Marshal(payload)
	if err != nil {
		for i, u := range p.urls {
			results[i] = DeliveryResult{URL: u, Err: fmt.Errorf("failed to marshal payload: %w", err)}
		}
		return results
	}

	var wg sync.WaitGroup
	for i, u := range p.urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			results[i] = p.deliver(ctx, u, body)
		}(i, u)
	}
	wg.Wait()

	return results
}

func (p *Publisher) deliver(ctx context.Context, webhookURL string, body []byte) DeliveryResult {
	logger := config.GetLogger()
	result := p.post(ctx, webhookURL, body)

	if result.OK {
		metrics.WebhookDeliveriesTotal.WithLabelValues(metrics.StatusSuccess).Inc()
		logger.Info().Str("url", webhookURL).Int("status", result.StatusCode).Msg("Webhook delivered")
		return result
	}

	metrics.WebhookDeliveriesTotal.WithLabelValues(metrics.StatusFailure).Inc()
	if result.Err == nil {
		result.Err = &apperrors.ErrUnexpectedStatus{URL: webhookURL, StatusCode: result.StatusCode}
	}
	logger.Error().Err(result.Err).Str("url", webhookURL).Str("body", result.Body).Msg("Webhook delivery failed")
	reporting.Capture(result.Err, map[string]string{"component": "webhook"})
	return result
}

func (p *Publisher) post(ctx context.Context, webhookURL string, body []byte) DeliveryResult {
	logger := config.GetLogger()
	result := DeliveryResult{URL: webhookURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		result.Err = fmt.Errorf("failed to create request: %w", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		result.Err = apperrors.NewTransportError(http.MethodPost, webhookURL, err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		result.Err = apperrors.NewTransportError("read", webhookURL, err)
		return result
	}
	result.Body = string(respBody)
	result.OK = resp.StatusCode >= 200 && resp.StatusCode <= 299

	logger.Debug().
		Str("url", webhookURL).
		Int("status", resp.StatusCode).
		Str("size", humanize.Bytes(uint64(len(respBody)))).
		Msg("Webhook answered")
	return result
}
