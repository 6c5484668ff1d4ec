package serialize

import (
	"strings"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// RenderStyle turns an ordered style mapping into a single attribute
// value string. Declarations with nil values are skipped. The second
// return value is false when no declarations were kept, which callers
// must distinguish from an empty string: "no style" omits the attribute
// entirely.
func RenderStyle(style element.Style) (string, bool) {
	var buf strings.Builder
	kept := false
	for _, prop := range style {
		if prop.Value == nil {
			continue
		}
		if kept {
			buf.WriteByte(';')
		}
		buf.WriteString(kebabCase(prop.Name))
		buf.WriteByte(':')
		buf.WriteString(NormalizeStyleValue(prop.Name, prop.Value))
		kept = true
	}
	if !kept {
		return "", false
	}
	return buf.String(), true
}
