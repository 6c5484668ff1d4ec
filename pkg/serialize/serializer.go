package serialize

import (
	"io"
	"strings"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// Config configures the serializer.
type Config struct {
	// Context is the traversal context handed to components. It is a
	// single map shared across the whole render: component contributions
	// mutate it in place and stay visible to everything rendered later,
	// later sibling subtrees included. Pass a fresh map per render for
	// isolation. Nil means an empty context per call.
	Context element.Context

	// Beautify inserts newlines and tab indentation around non-inline
	// tags. When false no whitespace is ever inserted.
	Beautify bool
}

// Serializer converts element trees to markup text. The zero value is
// usable and renders compact output with an empty context.
type Serializer struct {
	config Config
}

// New creates a Serializer with the given configuration.
func New(config Config) *Serializer {
	return &Serializer{config: config}
}

// RenderToString renders a tree with the default configuration: compact
// output, fresh empty context.
func RenderToString(node *element.Node) string {
	return New(Config{}).RenderToString(node)
}

// RenderToString renders an element tree to markup text. Malformed or
// unrecognized nodes degrade to empty output rather than failing; a
// broken subtree must not take down a whole page render.
func (s *Serializer) RenderToString(node *element.Node) string {
	ctx := s.config.Context
	if ctx == nil {
		ctx = make(element.Context)
	}
	// depth -1 is the "no formatting" state: distinct from depth 0,
	// which already places newlines before nested non-inline tags.
	depth := -1
	if s.config.Beautify {
		depth = 0
	}
	return s.renderNode(node, ctx, depth)
}

// RenderToWriter renders an element tree to the given writer.
func (s *Serializer) RenderToWriter(w io.Writer, node *element.Node) error {
	// Closing-tag placement inspects composed child output, so the tree
	// is rendered to a string first rather than streamed.
	_, err := io.WriteString(w, s.RenderToString(node))
	return err
}

// renderNode dispatches rendering based on node kind. Cases are ordered
// and the first match wins.
func (s *Serializer) renderNode(node *element.Node, ctx element.Context, depth int) string {
	if node == nil {
		return ""
	}

	switch node.Kind {
	case element.KindList:
		return s.renderChildren(node.List, ctx, depth)
	case element.KindText:
		return EscapeText(node.Text)
	case element.KindNumber:
		return formatNumber(node.Num)
	case element.KindFragment:
		// Fragments contribute no markup and no indent depth of their own.
		return s.renderChildren(node.Children, ctx, depth)
	case element.KindRawHTML:
		return s.renderRawHTML(node, ctx, depth)
	case element.KindElement:
		return s.renderNative(node.Tag, node.Props, node.Children, ctx, depth)
	case element.KindComponent:
		return s.renderComponent(node, ctx, depth)
	case element.KindFunc:
		if node.Fn == nil {
			return ""
		}
		return s.renderNode(node.Fn(node.Props, ctx), ctx, depth)
	default:
		// Unrecognized shapes degrade to nothing, deliberately.
		return ""
	}
}

// renderRawHTML emits a raw markup payload. With no wrapper props the
// payload stands alone; otherwise it is wrapped in a div carrying them.
func (s *Serializer) renderRawHTML(node *element.Node, ctx element.Context, depth int) string {
	wrapper := make(element.Props, len(node.Props)+1)
	for key, value := range node.Props {
		if key == "children" {
			continue
		}
		wrapper[key] = value
	}

	tag := "div"
	if len(wrapper) == 0 {
		tag = ""
	}
	wrapper[element.InnerHTMLKey] = element.InnerHTML{HTML: node.Text}
	return s.renderNative(tag, wrapper, nil, ctx, depth)
}

// renderNative renders a markup tag with attributes and content. An
// empty tag renders the content alone with no wrapping.
func (s *Serializer) renderNative(tag string, props element.Props, children []*element.Node, ctx element.Context, depth int) string {
	childDepth := depth
	if depth >= 0 && !IsInline(tag) {
		childDepth = depth + 1
	}

	var content string
	attrProps := props
	rawValue, hasValue := props["value"]
	payload, hasPayload := props[element.InnerHTMLKey].(element.InnerHTML)
	switch {
	case tag == "textarea" && hasValue:
		// A textarea's value prop becomes its content, not an attribute.
		attrProps = make(element.Props, len(props))
		for key, value := range props {
			if key != "value" {
				attrProps[key] = value
			}
		}
		content = s.renderChildren([]*element.Node{element.ToNode(rawValue)}, ctx, childDepth)
	case hasPayload:
		content = payload.HTML
	case len(children) > 0:
		content = s.renderChildren(children, ctx, childDepth)
	}

	if tag == "" {
		return content
	}

	var buf strings.Builder
	if depth > 0 && !IsInline(tag) {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat("\t", depth))
	}

	buf.WriteByte('<')
	buf.WriteString(tag)
	buf.WriteString(RenderAttributes(attrProps))

	// Self-closing tags never carry content, even when children were
	// supplied.
	if IsSelfClosing(tag) {
		buf.WriteString(" />")
		return buf.String()
	}

	buf.WriteByte('>')
	buf.WriteString(content)

	// A newline-then-tab sequence in the composed content means some
	// descendant opened an indented line, so the closing tag moves to
	// its own line. Text that legitimately contains "\n\t" trips this
	// too; the heuristic is part of the output contract.
	if depth >= 0 && !IsInline(tag) && tag != "pre" && strings.Contains(content, "\n\t") {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat("\t", depth))
	}

	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
	return buf.String()
}

// renderComponent instantiates a component type and renders its output,
// running the optional lifecycle hooks first.
func (s *Serializer) renderComponent(node *element.Node, ctx element.Context, depth int) string {
	if node.Type == nil {
		return ""
	}
	comp := node.Type(node.Props, ctx)
	if comp == nil {
		return ""
	}
	if hook, ok := comp.(element.WillMounter); ok {
		hook.WillMount()
	}
	if hook, ok := comp.(element.ChildContexter); ok {
		// Merged into the shared map, not a copy: descendants and every
		// node rendered after this point observe the contribution.
		for key, value := range hook.ChildContext() {
			ctx[key] = value
		}
	}
	return s.renderNode(comp.Render(), ctx, depth)
}

// renderChildren renders a sequence of children in order.
func (s *Serializer) renderChildren(children []*element.Node, ctx element.Context, depth int) string {
	var buf strings.Builder
	for i, child := range children {
		out := s.renderNode(child, ctx, depth)
		if i == 0 && depth == 0 {
			// Avoid a spurious blank line before a top-level
			// non-inline element in beautified output.
			out = strings.TrimPrefix(out, "\n")
		}
		buf.WriteString(out)
	}
	return buf.String()
}
