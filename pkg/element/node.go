package element

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText      Kind = iota // Plain text node
	KindNumber                // Numeric node, rendered in decimal form
	KindList                  // Ordered sequence of nodes
	KindElement               // <div>, <button>, etc.
	KindFragment              // Grouping without wrapper
	KindRawHTML               // Raw HTML (dangerous)
	KindFunc                  // Stateless function component
	KindComponent             // Stateful component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindList:
		return "List"
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	case KindRawHTML:
		return "RawHTML"
	case KindFunc:
		return "Func"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// InnerHTMLKey is the reserved prop key carrying a raw markup payload.
// Its value must be an InnerHTML and is never rendered as an attribute.
const InnerHTMLKey = "dangerouslySetInnerHTML"

// InnerHTML is the payload stored under InnerHTMLKey. The markup is
// emitted verbatim, without escaping.
type InnerHTML struct {
	HTML string
}

// Node is a renderable value in the element tree. A nil *Node renders to
// the empty string. Which fields are meaningful depends on Kind.
type Node struct {
	Kind     Kind
	Text     string  // KindText: escaped on output. KindRawHTML: emitted verbatim.
	Num      float64 // KindNumber
	List     []*Node // KindList
	Tag      string  // KindElement tag name (e.g., "div")
	Props    Props   // Attributes; also wrapper props for KindRawHTML
	Children []*Node // KindElement and KindFragment child nodes
	Fn       Func    // KindFunc
	Type     ComponentType // KindComponent
}

// Props holds attributes. Values are restricted by contract to string,
// bool, int, int64, float64, Style (under "style") and InnerHTML (under
// InnerHTMLKey). The "key" entry is reconciliation metadata and is never
// rendered.
type Props map[string]any

// Context carries values contributed by components down the traversal.
// It is a single map mutated in place: a component's ChildContext entries
// are visible to every node rendered after it, including later sibling
// subtrees. Callers that need isolation must pass a fresh map per render.
type Context map[string]any

// Component is a stateful renderable instance.
type Component interface {
	Render() *Node
}

// WillMounter is an optional hook invoked once before Render. It runs for
// side effects only; its purpose is to prepare instance state.
type WillMounter interface {
	WillMount()
}

// ChildContexter optionally contributes entries to the shared context.
// The returned entries are merged into the traversal context before the
// component renders.
type ChildContexter interface {
	ChildContext() Context
}

// ComponentType constructs a Component from props and context.
type ComponentType func(Props, Context) Component

// Func is a stateless component: invoked with props and context, it
// returns a further node to render.
type Func func(Props, Context) *Node

// StyleProp is a single CSS declaration. Names are camel-case and are
// converted to kebab-case on output.
type StyleProp struct {
	Name  string
	Value any
}

// Style is an ordered list of CSS declarations kept in insertion order.
type Style []StyleProp
