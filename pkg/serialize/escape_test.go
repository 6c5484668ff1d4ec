package serialize

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"less than", "1 < 2", "1 &lt; 2"},
		{"greater than untouched", "2 > 1", "2 > 1"},
		{"quotes untouched", `say "hi"`, `say "hi"`},
		{"entity not double escaped", "&amp;", "&amp;amp;"},
		{"mixed", "<a href>&</a>", "&lt;a href>&amp;&lt;/a>"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.input); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttribute(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"less than untouched", "1 < 2", "1 < 2"},
		{"single quote untouched", "it's", "it's"},
		{"injection attempt", `x" onmouseover="alert(1)`, "x&quot; onmouseover=&quot;alert(1)"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeAttribute(tt.input); got != tt.want {
				t.Errorf("EscapeAttribute(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Escaped text embedded in markup must parse back to the original value.
// A minimal entity decode is enough to check the round trip for the two
// characters each escaper rewrites.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"a & b & c",
		"<div> & <span>",
		`"quoted" & <tagged>`,
		"&amp; already escaped",
	}

	for _, input := range inputs {
		text := EscapeText(input)
		back := strings.ReplaceAll(strings.ReplaceAll(text, "&lt;", "<"), "&amp;", "&")
		if back != input {
			t.Errorf("text round trip of %q gave %q", input, back)
		}

		attr := EscapeAttribute(input)
		back = strings.ReplaceAll(strings.ReplaceAll(attr, "&quot;", `"`), "&amp;", "&")
		if back != input {
			t.Errorf("attribute round trip of %q gave %q", input, back)
		}
	}
}
