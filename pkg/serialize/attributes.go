package serialize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// RenderAttributes turns a prop mapping into a markup attribute string.
// Each emitted attribute is preceded by a single space. Go maps carry no
// insertion order, so props iterate in sorted key order to keep output
// deterministic.
//
// The filtering ladder, applied per entry:
//  1. values that are not string, bool or number are dropped
//  2. reserved metadata keys ("key", "children") are dropped
//  3. a boolean attribute with a literal false value is omitted
//  4. a boolean value on a non-meaningful attribute is dropped so
//     internal flags never leak into markup as text
//  5. boolean attributes render by presence only, whatever the value
func RenderAttributes(props element.Props) string {
	if len(props) == 0 {
		return ""
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, rawName := range keys {
		name := NormalizeAttributeName(rawName)
		value := normalizeAttributeValue(rawName, props[rawName])

		text, isBool, ok := attributeText(value)
		if !ok {
			continue
		}
		if IsInternalProp(rawName) {
			continue
		}
		if IsBooleanAttribute(name) && value == false {
			continue
		}
		if isBool && !IsMeaningfulBooleanValue(rawName, name) {
			continue
		}

		buf.WriteByte(' ')
		buf.WriteString(name)

		// Presence-only: a truthy non-boolean value still renders bare.
		if IsBooleanAttribute(name) {
			continue
		}

		buf.WriteString(`="`)
		buf.WriteString(text)
		buf.WriteByte('"')
	}
	return buf.String()
}

// attributeText converts a normalized prop value into its quoted text
// form. ok is false for value types that never render as attributes.
func attributeText(value any) (text string, isBool, ok bool) {
	switch v := value.(type) {
	case string:
		return EscapeAttribute(v), false, true
	case bool:
		return strconv.FormatBool(v), true, true
	case int:
		return strconv.Itoa(v), false, true
	case int64:
		return strconv.FormatInt(v, 10), false, true
	case float64:
		return formatNumber(v), false, true
	default:
		return "", false, false
	}
}
