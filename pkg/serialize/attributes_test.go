package serialize

import (
	"testing"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

func TestNormalizeAttributeName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"className", "class"},
		{"htmlFor", "for"},
		{"tabIndex", "tabindex"},
		{"contentEditable", "contenteditable"},
		{"id", "id"},
		{"data-id", "data-id"},
	}

	for _, tt := range tests {
		if got := NormalizeAttributeName(tt.raw); got != tt.want {
			t.Errorf("NormalizeAttributeName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name  string
		props element.Props
		want  string
	}{
		{
			name:  "nil props",
			props: nil,
			want:  "",
		},
		{
			name:  "string attribute",
			props: element.Props{"id": "main"},
			want:  ` id="main"`,
		},
		{
			name:  "name mapping",
			props: element.Props{"className": "a", "htmlFor": "b"},
			want:  ` class="a" for="b"`,
		},
		{
			name:  "boolean attribute true renders bare",
			props: element.Props{"disabled": true},
			want:  " disabled",
		},
		{
			name:  "boolean attribute false omitted",
			props: element.Props{"disabled": false},
			want:  "",
		},
		{
			name:  "boolean attribute with truthy string is presence only",
			props: element.Props{"checked": "checked"},
			want:  " checked",
		},
		{
			name:  "boolean attribute with number is presence only",
			props: element.Props{"disabled": 0},
			want:  " disabled",
		},
		{
			name:  "non-meaningful boolean dropped",
			props: element.Props{"customFlag": true},
			want:  "",
		},
		{
			name:  "data boolean renders text",
			props: element.Props{"data-open": true},
			want:  ` data-open="true"`,
		},
		{
			name:  "aria boolean renders text",
			props: element.Props{"aria-hidden": false},
			want:  ` aria-hidden="false"`,
		},
		{
			name:  "enumerated boolean renders text",
			props: element.Props{"contentEditable": true},
			want:  ` contenteditable="true"`,
		},
		{
			name:  "number attribute",
			props: element.Props{"tabIndex": 3},
			want:  ` tabindex="3"`,
		},
		{
			name:  "attribute value escaped",
			props: element.Props{"title": `say "hi" & bye`},
			want:  ` title="say &quot;hi&quot; &amp; bye"`,
		},
		{
			name:  "internal props skipped",
			props: element.Props{"key": "row-1", "children": "x", "id": "a"},
			want:  ` id="a"`,
		},
		{
			name:  "unsupported value types skipped",
			props: element.Props{"onClick": struct{}{}, "id": "a"},
			want:  ` id="a"`,
		},
		{
			name:  "raw html payload never renders",
			props: element.Props{element.InnerHTMLKey: element.InnerHTML{HTML: "<b>x</b>"}},
			want:  "",
		},
		{
			name: "style renders as declaration string",
			props: element.Props{"style": element.Style{
				{Name: "color", Value: "red"},
				{Name: "width", Value: 10},
			}},
			want: ` style="color:red;width:10px"`,
		},
		{
			name:  "empty style omits attribute",
			props: element.Props{"style": element.Style{}},
			want:  "",
		},
		{
			name:  "sorted key order",
			props: element.Props{"id": "a", "class": "b", "title": "c"},
			want:  ` class="b" id="a" title="c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderAttributes(tt.props); got != tt.want {
				t.Errorf("RenderAttributes() = %q, want %q", got, tt.want)
			}
		})
	}
}
