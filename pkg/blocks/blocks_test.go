package blocks

import (
	"testing"

	"github.com/blockforge-dev/blockforge/pkg/element"
	"github.com/blockforge-dev/blockforge/pkg/serialize"
)

func render(t *testing.T, b Block) string {
	t.Helper()
	return serialize.RenderToString(DefaultRegistry().Render(b))
}

func TestCoreBlocks(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  string
	}{
		{
			name:  "paragraph",
			block: Block{Type: "core/paragraph", Attrs: map[string]any{"content": "Hello"}},
			want:  "<p>Hello</p>",
		},
		{
			name: "paragraph aligned",
			block: Block{Type: "core/paragraph", Attrs: map[string]any{
				"content": "Hello", "align": "center",
			}},
			want: `<p style="text-align:center">Hello</p>`,
		},
		{
			name:  "paragraph escapes content",
			block: Block{Type: "core/paragraph", Attrs: map[string]any{"content": "a < b & c"}},
			want:  "<p>a &lt; b &amp; c</p>",
		},
		{
			name:  "heading default level",
			block: Block{Type: "core/heading", Attrs: map[string]any{"content": "Title"}},
			want:  "<h2>Title</h2>",
		},
		{
			name: "heading clamps level",
			block: Block{Type: "core/heading", Attrs: map[string]any{
				"content": "Title", "level": float64(9),
			}},
			want: "<h6>Title</h6>",
		},
		{
			name: "unordered list",
			block: Block{Type: "core/list", Attrs: map[string]any{
				"items": []any{"a", "b"},
			}},
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "ordered list",
			block: Block{Type: "core/list", Attrs: map[string]any{
				"items": []string{"a"}, "ordered": true,
			}},
			want: "<ol><li>a</li></ol>",
		},
		{
			name: "quote with citation",
			block: Block{Type: "core/quote", Attrs: map[string]any{
				"content": "Words", "citation": "Someone",
			}},
			want: "<blockquote><p>Words</p><cite>Someone</cite></blockquote>",
		},
		{
			name:  "quote without citation",
			block: Block{Type: "core/quote", Attrs: map[string]any{"content": "Words"}},
			want:  "<blockquote><p>Words</p></blockquote>",
		},
		{
			name:  "code escapes",
			block: Block{Type: "core/code", Attrs: map[string]any{"content": "if a < b {}"}},
			want:  "<pre><code>if a &lt; b {}</code></pre>",
		},
		{
			name: "image plain",
			block: Block{Type: "core/image", Attrs: map[string]any{
				"url": "/a.png", "alt": "A",
			}},
			want: `<img alt="A" src="/a.png" />`,
		},
		{
			name: "image with caption",
			block: Block{Type: "core/image", Attrs: map[string]any{
				"url": "/a.png", "alt": "A", "caption": "The letter A",
			}},
			want: `<figure><img alt="A" src="/a.png" /><figcaption>The letter A</figcaption></figure>`,
		},
		{
			name:  "separator",
			block: Block{Type: "core/separator"},
			want:  "<hr />",
		},
		{
			name:  "raw html verbatim",
			block: Block{Type: "core/html", Attrs: map[string]any{"content": "<b>x</b>"}},
			want:  "<b>x</b>",
		},
		{
			name: "group nests",
			block: Block{Type: "core/group", Attrs: map[string]any{"className": "wrap"},
				Inner: []Block{
					{Type: "core/paragraph", Attrs: map[string]any{"content": "inner"}},
				}},
			want: `<div class="wrap"><p>inner</p></div>`,
		},
		{
			name:  "unknown type renders nothing",
			block: Block{Type: "plugin/unknown"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.block); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	err := r.Register("plugin/callout", func(Block) *element.Node {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register("plugin/callout", nil); err == nil {
		t.Error("nil renderer should be rejected")
	}
	err = r.Register("plugin/callout", func(Block) *element.Node { return nil })
	if err == nil {
		t.Error("duplicate registration should fail")
	}
}

func TestRenderAll(t *testing.T) {
	doc := []Block{
		{Type: "core/heading", Attrs: map[string]any{"content": "T", "level": 1}},
		{Type: "plugin/unknown"},
		{Type: "core/paragraph", Attrs: map[string]any{"content": "body"}},
	}
	got := serialize.RenderToString(DefaultRegistry().RenderAll(doc))
	want := "<h1>T</h1><p>body</p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultRegistryTypes(t *testing.T) {
	types := DefaultRegistry().Types()
	if len(types) != 9 {
		t.Fatalf("got %d core types: %v", len(types), types)
	}
	if types[0] != "core/code" {
		t.Errorf("types not sorted: %v", types)
	}
}
