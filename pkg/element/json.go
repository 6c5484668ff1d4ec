package element

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Wire format for stored element trees.
//
// A node is one of:
//   - a JSON string: text node
//   - a JSON number: numeric node
//   - a JSON array: node sequence
//   - null, true or false: renders to nothing
//   - an object: {"tag": "...", "props": {...}, "children": [...]}
//
// Two tag values are reserved: "#fragment" renders children without a
// wrapper, and "#raw" emits the object's "html" string verbatim.
const (
	fragmentTag = "#fragment"
	rawTag      = "#raw"
)

// DecodeNode parses a stored element tree into a Node.
func DecodeNode(data []byte) (*Node, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("element: invalid tree JSON: %w", err)
	}
	return decodeValue(raw)
}

func decodeValue(v any) (*Node, error) {
	switch val := v.(type) {
	case nil, bool:
		return nil, nil
	case string:
		return Text(val), nil
	case float64:
		return Number(val), nil
	case []any:
		list := make([]*Node, 0, len(val))
		for _, item := range val {
			node, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, node)
		}
		return List(list...), nil
	case map[string]any:
		return decodeObject(val)
	default:
		return nil, fmt.Errorf("element: unsupported tree value %T", v)
	}
}

func decodeObject(obj map[string]any) (*Node, error) {
	tag, _ := obj["tag"].(string)
	if tag == "" {
		return nil, fmt.Errorf("element: tree object missing tag")
	}

	props, err := decodeProps(obj["props"])
	if err != nil {
		return nil, err
	}

	var children []*Node
	if rawChildren, ok := obj["children"]; ok {
		child, err := decodeValue(rawChildren)
		if err != nil {
			return nil, err
		}
		switch {
		case child == nil:
		case child.Kind == KindList:
			children = child.List
		default:
			children = []*Node{child}
		}
	}

	switch tag {
	case fragmentTag:
		return &Node{Kind: KindFragment, Children: children}, nil
	case rawTag:
		html, _ := obj["html"].(string)
		return &Node{Kind: KindRawHTML, Text: html, Props: props}, nil
	default:
		return &Node{Kind: KindElement, Tag: tag, Props: props, Children: children}, nil
	}
}

func decodeProps(v any) (Props, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("element: props must be an object, got %T", v)
	}
	props := make(Props, len(raw))
	for key, value := range raw {
		switch val := value.(type) {
		case string, bool, float64:
			props[key] = val
		case map[string]any:
			if key == "style" {
				props[key] = decodeStyle(val)
			} else if key == InnerHTMLKey {
				html, _ := val["__html"].(string)
				props[key] = InnerHTML{HTML: html}
			} else {
				return nil, fmt.Errorf("element: prop %q has unsupported object value", key)
			}
		default:
			return nil, fmt.Errorf("element: prop %q has unsupported value %T", key, value)
		}
	}
	return props, nil
}

// decodeStyle converts a JSON style object into an ordered Style. JSON
// objects carry no order, so declarations sort by property name.
func decodeStyle(raw map[string]any) Style {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	style := make(Style, 0, len(names))
	for _, name := range names {
		if raw[name] == nil {
			continue
		}
		style = append(style, StyleProp{Name: name, Value: raw[name]})
	}
	return style
}
