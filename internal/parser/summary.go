package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// StripMarkup returns the text content of an HTML fragment. Entities are decoded
// and every tag is dropped, so "<p>Two <b>men</b></p>" becomes "Two men". Tags that
// only appear once entities are decoded ("&lt;b&gt;") are dropped as well.
func StripMarkup(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.TrimSpace(fragment)
	}

	text := fragment
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err == nil {
		text = doc.Text()
	}
	return strings.TrimSpace(removeTags(text))
}

// removeTags strips tag patterns until none is left, removal can join two halves into a new tag.
func removeTags(text string) string {
	for {
		stripped := tagPattern.ReplaceAllString(text, "")
		if stripped == text {
			return text
		}
		text = stripped
	}
}

// stripMarkupPtr keeps absent values absent.
func stripMarkupPtr(fragment *string) *string {
	if fragment == nil {
		return nil
	}
	text := StripMarkup(*fragment)
	return &text
}
