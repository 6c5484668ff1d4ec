package serialize

import (
	"testing"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

func TestRenderStyle(t *testing.T) {
	tests := []struct {
		name   string
		style  element.Style
		want   string
		wantOK bool
	}{
		{
			name: "unitless preserved and px appended",
			style: element.Style{
				{Name: "opacity", Value: 0.5},
				{Name: "lineHeight", Value: 1.5},
				{Name: "width", Value: 10},
			},
			want:   "opacity:0.5;line-height:1.5;width:10px",
			wantOK: true,
		},
		{
			name:   "camel case to kebab case",
			style:  element.Style{{Name: "backgroundColor", Value: "red"}},
			want:   "background-color:red",
			wantOK: true,
		},
		{
			name: "nil values skipped",
			style: element.Style{
				{Name: "color", Value: nil},
				{Name: "margin", Value: "1em"},
			},
			want:   "margin:1em",
			wantOK: true,
		},
		{
			name:   "zero stays unitless",
			style:  element.Style{{Name: "margin", Value: 0}},
			want:   "margin:0",
			wantOK: true,
		},
		{
			name:   "string values pass through",
			style:  element.Style{{Name: "width", Value: "50%"}},
			want:   "width:50%",
			wantOK: true,
		},
		{
			name:   "empty style distinguishes from empty string",
			style:  element.Style{},
			want:   "",
			wantOK: false,
		},
		{
			name:   "all nil values",
			style:  element.Style{{Name: "color", Value: nil}},
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RenderStyle(tt.style)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RenderStyle() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeStyleValue(t *testing.T) {
	tests := []struct {
		property string
		value    any
		want     string
	}{
		{"width", 10, "10px"},
		{"width", 10.5, "10.5px"},
		{"width", 0, "0"},
		{"opacity", 0.5, "0.5"},
		{"zIndex", 100, "100"},
		{"margin", "2em", "2em"},
		{"lineHeight", int64(2), "2"},
	}

	for _, tt := range tests {
		if got := NormalizeStyleValue(tt.property, tt.value); got != tt.want {
			t.Errorf("NormalizeStyleValue(%q, %v) = %q, want %q",
				tt.property, tt.value, got, tt.want)
		}
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"lineHeight", "line-height"},
		{"backgroundColor", "background-color"},
		{"color", "color"},
		{"animationIterationCount", "animation-iteration-count"},
	}

	for _, tt := range tests {
		if got := kebabCase(tt.input); got != tt.want {
			t.Errorf("kebabCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
