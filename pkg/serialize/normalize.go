package serialize

import (
	"strconv"
	"strings"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// NormalizeAttributeName maps an internal prop name to its markup name.
// className and htmlFor carry over from the editor's element layer; every
// other name is lowercased.
func NormalizeAttributeName(rawName string) string {
	switch rawName {
	case "htmlFor":
		return "for"
	case "className":
		return "class"
	default:
		return strings.ToLower(rawName)
	}
}

// normalizeAttributeValue converts a prop value into its markup-legal
// form. A style mapping is replaced by its rendered declaration string;
// a style with no kept declarations becomes nil and is later skipped.
// Everything else passes through unchanged.
func normalizeAttributeValue(rawName string, rawValue any) any {
	if rawName != "style" {
		return rawValue
	}
	style, ok := rawValue.(element.Style)
	if !ok {
		return rawValue
	}
	rendered, ok := RenderStyle(style)
	if !ok {
		return nil
	}
	return rendered
}

// NormalizeStyleValue appends the implicit px unit to numeric, non-zero
// style values outside the unitless set. All other values are returned
// in their text form unchanged.
func NormalizeStyleValue(property string, value any) string {
	switch v := value.(type) {
	case int:
		return formatStyleNumber(property, float64(v))
	case int64:
		return formatStyleNumber(property, float64(v))
	case float64:
		return formatStyleNumber(property, v)
	case string:
		return v
	default:
		return ""
	}
}

func formatStyleNumber(property string, n float64) string {
	text := formatNumber(n)
	if n != 0 && !IsUnitlessStyle(property) {
		return text + "px"
	}
	return text
}

// formatNumber renders a number in its shortest decimal text form.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// kebabCase converts a camel-case style property name to kebab-case.
func kebabCase(name string) string {
	var buf strings.Builder
	buf.Grow(len(name) + 2)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			buf.WriteByte('-')
			buf.WriteRune(r + ('a' - 'A'))
			continue
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
