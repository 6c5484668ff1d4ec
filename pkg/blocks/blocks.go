package blocks

import (
	"fmt"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// Block is one unit of stored editor content: a type name plus its
// saved attributes and any nested blocks.
type Block struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
	Inner []Block        `json:"inner,omitempty"`
}

// strAttr reads a string attribute, empty when absent or mistyped.
func (b Block) strAttr(name string) string {
	s, _ := b.Attrs[name].(string)
	return s
}

// intAttr reads a numeric attribute with a fallback. Stored JSON numbers
// arrive as float64.
func (b Block) intAttr(name string, fallback int) int {
	switch v := b.Attrs[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func (b Block) boolAttr(name string) bool {
	v, _ := b.Attrs[name].(bool)
	return v
}

// listAttr reads a string-list attribute, tolerating []any from JSON.
func (b Block) listAttr(name string) []string {
	switch v := b.Attrs[name].(type) {
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	default:
		return nil
	}
}

// Paragraph renders a paragraph block: attributes "content", "align".
func Paragraph(b Block) *element.Node {
	props := element.Props{}
	if align := b.strAttr("align"); align != "" {
		props["style"] = element.Style{{Name: "textAlign", Value: align}}
	}
	return element.El("p", props, b.strAttr("content"))
}

// Heading renders a heading block: attributes "content", "level" (2 by
// default, clamped to 1..6).
func Heading(b Block) *element.Node {
	level := b.intAttr("level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return element.El(fmt.Sprintf("h%d", level), b.strAttr("content"))
}

// List renders a list block: attributes "items", "ordered".
func List(b Block) *element.Node {
	tag := "ul"
	if b.boolAttr("ordered") {
		tag = "ol"
	}
	return element.El(tag, element.Range(b.listAttr("items"), func(item string, _ int) *element.Node {
		return element.El("li", item)
	}))
}

// Quote renders a quote block: attributes "content", "citation".
func Quote(b Block) *element.Node {
	return element.El("blockquote",
		element.El("p", b.strAttr("content")),
		element.When(b.strAttr("citation") != "", func() *element.Node {
			return element.El("cite", b.strAttr("citation"))
		}),
	)
}

// Code renders a code block: attribute "content". Content is escaped
// like any text node.
func Code(b Block) *element.Node {
	return element.El("pre", element.El("code", b.strAttr("content")))
}

// Image renders an image block: attributes "url", "alt", "caption".
// With a caption the image wraps in a figure.
func Image(b Block) *element.Node {
	img := element.El("img", element.Props{
		"src": b.strAttr("url"),
		"alt": b.strAttr("alt"),
	})
	caption := b.strAttr("caption")
	if caption == "" {
		return img
	}
	return element.El("figure", img, element.El("figcaption", caption))
}

// Separator renders a separator block as a horizontal rule.
func Separator(Block) *element.Node {
	return element.El("hr")
}

// HTML renders a raw markup block: attribute "content" is emitted
// verbatim. Stored content is trusted editor output.
func HTML(b Block) *element.Node {
	return element.Raw(b.strAttr("content"))
}

// Group renders nested blocks inside a div wrapper, honoring an
// optional "className" attribute.
func Group(b Block, render func(Block) *element.Node) *element.Node {
	props := element.Props{}
	if class := b.strAttr("className"); class != "" {
		props["className"] = class
	}
	return element.El("div", props, element.Range(b.Inner, func(inner Block, _ int) *element.Node {
		return render(inner)
	}))
}
