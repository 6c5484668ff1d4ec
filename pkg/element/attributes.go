package element

import "strings"

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// The "className" spelling used by editor components normalizes to
// "class" during serialization; builders emit "className" so round-trips
// through stored props stay uniform.
func Class(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// For sets the for attribute on labels via its "htmlFor" alias.
func For(id string) Attr { return attr("htmlFor", id) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// TitleAttr sets the title attribute (named to avoid conflict with a
// Title element builder).
func TitleAttr(title string) Attr { return attr("title", title) }

// Value sets the value attribute. On textarea elements the serializer
// hoists it into the element's content instead.
func Value(v any) Attr { return attr("value", v) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(n string) Attr { return attr("name", n) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Data creates a data-* attribute.
// Example: Data("id", "123") becomes data-id="123".
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Aria creates an aria-* attribute.
// Example: Aria("hidden", true) becomes aria-hidden="true".
func Aria(key string, value any) Attr { return attr("aria-"+key, value) }

// Disabled sets the disabled boolean attribute.
func Disabled() Attr { return attr("disabled", true) }

// Checked sets the checked boolean attribute.
func Checked() Attr { return attr("checked", true) }

// Hidden sets the hidden boolean attribute.
func Hidden() Attr { return attr("hidden", true) }

// Key sets the reconciliation key. It is metadata only and never
// serialized as an attribute.
func Key(key string) Attr { return attr("key", key) }

// StyleProps builds an ordered style value from name/value pairs.
// Panics if given an odd number of arguments; this is a programmer error.
func StyleProps(pairs ...any) Style {
	if len(pairs)%2 != 0 {
		panic("element: StyleProps requires name/value pairs")
	}
	style := make(Style, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("element: StyleProps names must be strings")
		}
		style = append(style, StyleProp{Name: name, Value: pairs[i+1]})
	}
	return style
}
