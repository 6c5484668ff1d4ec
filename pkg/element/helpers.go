package element

import "fmt"

// Text creates a text node.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Number creates a numeric node.
func Number(n float64) *Node {
	return &Node{
		Kind: KindNumber,
		Num:  n,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRawHTML,
		Text: html,
	}
}

// RawWith creates an unescaped HTML node carrying wrapper props. When
// props is non-empty the serializer wraps the markup in a div holding
// those props.
func RawWith(props Props, html string) *Node {
	return &Node{
		Kind:  KindRawHTML,
		Text:  html,
		Props: props,
	}
}

// List groups nodes into a sequence without any grouping semantics.
func List(nodes ...*Node) *Node {
	return &Node{
		Kind: KindList,
		List: nodes,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	node := &Node{
		Kind:     KindFragment,
		Children: make([]*Node, 0, len(children)),
	}
	for _, child := range children {
		appendChild(&node.Children, child)
	}
	return node
}

// El creates an element node with the given tag.
// Arguments can be: nil, Props, Attr, Style, *Node, []*Node, string,
// float64/int, Func, ComponentType.
func El(tag string, args ...any) *Node {
	node := &Node{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*Node, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Props:
			for key, value := range v {
				node.Props[key] = value
			}

		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}

		case Style:
			node.Props["style"] = v

		case InnerHTML:
			node.Props[InnerHTMLKey] = v

		default:
			appendChild(&node.Children, arg)
		}
	}

	return node
}

// Fn creates a node that invokes a stateless component.
func Fn(fn Func, props Props) *Node {
	return &Node{
		Kind:  KindFunc,
		Fn:    fn,
		Props: props,
	}
}

// Comp creates a node that instantiates a stateful component type.
func Comp(typ ComponentType, props Props) *Node {
	return &Node{
		Kind:  KindComponent,
		Type:  typ,
		Props: props,
	}
}

// appendChild coerces a builder argument into child nodes.
func appendChild(children *[]*Node, arg any) {
	switch v := arg.(type) {
	case *Node:
		if v != nil {
			*children = append(*children, v)
		}
	case []*Node:
		for _, c := range v {
			if c != nil {
				*children = append(*children, c)
			}
		}
	case string:
		*children = append(*children, Text(v))
	case int:
		*children = append(*children, Number(float64(v)))
	case int64:
		*children = append(*children, Number(float64(v)))
	case float64:
		*children = append(*children, Number(v))
	case Func:
		*children = append(*children, Fn(v, nil))
	case ComponentType:
		*children = append(*children, Comp(v, nil))
	case Component:
		*children = append(*children, Comp(func(Props, Context) Component { return v }, nil))
	}
}

// ToNode coerces an arbitrary prop value into a node. Unsupported values
// and false become nil, which renders to the empty string.
func ToNode(v any) *Node {
	switch val := v.(type) {
	case nil:
		return nil
	case *Node:
		return val
	case []*Node:
		return List(val...)
	case string:
		return Text(val)
	case int:
		return Number(float64(val))
	case int64:
		return Number(float64(val))
	case float64:
		return Number(val)
	case bool:
		// false renders to nothing; true has no defined rendering either.
		return nil
	default:
		return nil
	}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *Node) *Node {
	if !condition {
		return node
	}
	return nil
}

// Range maps a slice to nodes.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *Node {
	return nil
}
