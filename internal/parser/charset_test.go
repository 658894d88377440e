package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// TestNewUTF8Reader_AlreadyUTF8 tests that UTF-8 content passes through unchanged
func TestNewUTF8Reader_AlreadyUTF8(t *testing.T) {
	t.Parallel()
	input := []byte(`{"name":"Café ☺"}`)
	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read from UTF-8 reader: %v", err)
	}

	if !bytes.Equal(output, input) {
		t.Errorf("Expected UTF-8 content to pass through unchanged, got %q", output)
	}
}

// TestNewUTF8Reader_ContentTypeCharset tests conversion driven by the Content-Type header
func TestNewUTF8Reader_ContentTypeCharset(t *testing.T) {
	t.Parallel()
	// é = 0xE9 in ISO-8859-1
	input := []byte(`{"name":"Caf` + string([]byte{0xE9}) + `"}`)

	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=ISO-8859-1")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read from UTF-8 reader: %v", err)
	}

	if !strings.Contains(string(output), "Café") {
		t.Errorf("Expected 'Café' in UTF-8 output, got: %s", output)
	}
}
