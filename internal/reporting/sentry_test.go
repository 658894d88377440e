package reporting

import (
	"errors"
	"testing"
)

func TestInit_EmptyDSNIsNoop(t *testing.T) {
	flush, err := Init("", "test")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if flush == nil {
		t.Fatal("Expected a flush function")
	}
	flush()
}

func TestInit_InvalidDSN(t *testing.T) {
	flush, err := Init("not a dsn", "test")
	if err == nil {
		t.Fatal("Expected error for invalid DSN, got nil")
	}
	if flush == nil {
		t.Fatal("Expected a flush function even on error")
	}
	flush()
}

func TestCapture_WithoutClient(t *testing.T) {
	// Must not panic when Sentry has not been initialised
	Capture(errors.New("boom"), map[string]string{"source": "tvmaze"})
	Capture(nil, nil)
}
