package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dustin/go-humanize"

	"github.com/Belphemur/TVShowInfo/internal/apperrors"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/parser"
)

// buildURL adds the query parameters to base, keeping any parameter already present in base.
func buildURL(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", base, err)
	}
	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// fetchJSON performs a GET request and hands the UTF-8 converted body to decode.
// Failures before a response is received are returned as *apperrors.ErrTransport,
// non-2xx responses as *apperrors.ErrUnexpectedStatus.
func fetchJSON(ctx context.Context, httpClient *http.Client, endpoint string, decode func(io.Reader) error) error {
	logger := config.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(http.MethodGet, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &apperrors.ErrUnexpectedStatus{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError("read", endpoint, err)
	}

	logger.Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Str("size", humanize.Bytes(uint64(len(body)))).
		Msg("Fetched JSON document")

	reader, err := parser.NewUTF8Reader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return fmt.Errorf("failed to detect charset of %s: %w", endpoint, err)
	}
	return decode(reader)
}
