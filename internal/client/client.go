package client

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/Belphemur/TVShowInfo/internal/config"
)

const (
	defaultClientTimeout  = 30 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// NewHTTPClient creates the HTTP client shared by the show sources and the webhook publisher.
// Every round trip is bounded by request_timeout through a failsafe timeout policy and the whole
// exchange, body included, by client_timeout.
func NewHTTPClient(cfg *config.Config, runID string) *http.Client {
	logger := config.GetLogger()

	clientTimeout := parseDuration(cfg.ClientTimeout, defaultClientTimeout, "client_timeout")
	requestTimeout := parseDuration(cfg.RequestTimeout, defaultRequestTimeout, "request_timeout")

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			// Log error but continue without proxy
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	if cfg.InsecureSkipVerify {
		logger.Warn().Msg("TLS certificate verification is disabled")
		baseTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in through configuration
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	var transport http.RoundTripper = newCompressionTransport(baseTransport)
	transport = failsafehttp.NewRoundTripper(transport, timeout.New[*http.Response](requestTimeout))
	transport = newInstrumentedTransport(transport, userAgent, runID)

	return &http.Client{
		Timeout:   clientTimeout,
		Transport: transport,
	}
}

func parseDuration(value string, fallback time.Duration, key string) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str(key, value).Dur("default", fallback).Msg("Invalid timeout duration, using default")
		return fallback
	}
	return parsed
}
