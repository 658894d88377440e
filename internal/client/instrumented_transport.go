package client

import (
	"net/http"
	"strconv"

	"github.com/Belphemur/TVShowInfo/internal/metrics"
)

// instrumentedTransport stamps outbound requests with the client identity and
// counts responses per host and status code.
type instrumentedTransport struct {
	transport http.RoundTripper
	userAgent string
	runID     string
}

func newInstrumentedTransport(base http.RoundTripper, userAgent, runID string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &instrumentedTransport{transport: base, userAgent: userAgent, runID: runID}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if t.runID != "" && req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", t.runID)
	}

	resp, err := t.transport.RoundTrip(req)
	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	metrics.HTTPRequestsTotal.WithLabelValues(req.URL.Host, code).Inc()
	return resp, err
}
