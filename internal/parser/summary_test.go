package parser

import (
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "nested tags", input: "<p>Two astronauts <b>land</b>.</p>", expected: "Two astronauts land."},
		{name: "plain text", input: "No markup here", expected: "No markup here"},
		{name: "entities", input: "<p>Tom &amp; Jerry</p>", expected: "Tom & Jerry"},
		{name: "line break tags", input: "First<br/>Second", expected: "FirstSecond"},
		{name: "attributes", input: `<a href="https://example.com" class="x">Link</a> text`, expected: "Link text"},
		{name: "surrounding whitespace", input: "  <p> padded </p>  ", expected: "padded"},
		{name: "empty", input: "", expected: ""},
		{name: "lone angle bracket", input: "a < b", expected: "a < b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StripMarkup(tt.input)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestStripMarkup_NeverLeavesTags(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"<div><p>Para <i>one</i></p><p>Para two</p></div>",
		"<p>Unclosed <b>bold",
		"<ul><li>One</li><li>Two</li></ul>",
		"&lt;b&gt;Pilot&lt;/b&gt; episode",
		"<p>&lt;i&gt;Escaped&lt;/i&gt; and <b>real</b></p>",
		"&lt;&lt;b&gt;b&gt;Nested",
	}
	for _, input := range inputs {
		got := StripMarkup(input)
		if tagPattern.MatchString(got) {
			t.Errorf("Expected no markup in %q, got %q", input, got)
		}
		if strings.Contains(got, "<") {
			t.Errorf("Expected no angle bracket in %q, got %q", input, got)
		}
	}
}

func TestStripMarkup_EntityEncodedTags(t *testing.T) {
	t.Parallel()
	got := StripMarkup("&lt;b&gt;Pilot&lt;/b&gt; episode")
	if got != "Pilot episode" {
		t.Errorf("Expected \"Pilot episode\", got %q", got)
	}
}

func TestStripMarkupPtr_KeepsAbsent(t *testing.T) {
	t.Parallel()
	if stripMarkupPtr(nil) != nil {
		t.Error("Expected nil for absent summary")
	}
	s := "<p>x</p>"
	got := stripMarkupPtr(&s)
	if got == nil || *got != "x" {
		t.Errorf("Expected \"x\", got %v", got)
	}
}
