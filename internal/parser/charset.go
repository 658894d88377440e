package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps an io.Reader with character encoding detection and conversion to UTF-8.
//
// The charset is detected from:
// 1. Byte order marks (BOM)
// 2. The charset parameter of the given Content-Type header value
// 3. UTF-8 validity of the first bytes, falling back to windows-1252
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}
