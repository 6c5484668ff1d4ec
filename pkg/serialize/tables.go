package serialize

import "strings"

// The lookup tables below mirror the HTML specification's lists. Their
// exact membership is part of the output contract.

// selfClosingTags are elements that cannot have children and render in
// the <tag /> form.
var selfClosingTags = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// IsSelfClosing returns true if the tag renders without a closing tag.
func IsSelfClosing(tag string) bool {
	return selfClosingTags[tag]
}

// inlineTags are elements excluded from indentation and newline
// insertion in beautified output. They do not affect attribute handling.
var inlineTags = map[string]bool{
	"a":        true,
	"abbr":     true,
	"acronym":  true,
	"b":        true,
	"bdo":      true,
	"big":      true,
	"br":       true,
	"button":   true,
	"cite":     true,
	"code":     true,
	"dfn":      true,
	"em":       true,
	"i":        true,
	"img":      true,
	"input":    true,
	"kbd":      true,
	"label":    true,
	"map":      true,
	"object":   true,
	"q":        true,
	"samp":     true,
	"script":   true,
	"select":   true,
	"small":    true,
	"span":     true,
	"strong":   true,
	"sub":      true,
	"sup":      true,
	"textarea": true,
	"time":     true,
	"tt":       true,
	"var":      true,
}

// IsInline returns true if the tag is rendered inline.
func IsInline(tag string) bool {
	return inlineTags[tag]
}

// booleanAttributes are attributes whose mere presence is meaningful.
// They render as bare names, never with a value.
var booleanAttributes = map[string]bool{
	"allowfullscreen":     true,
	"allowpaymentrequest": true,
	"allowusermedia":      true,
	"async":               true,
	"autofocus":           true,
	"autoplay":            true,
	"checked":             true,
	"controls":            true,
	"default":             true,
	"defer":               true,
	"disabled":            true,
	"formnovalidate":      true,
	"hidden":              true,
	"ismap":               true,
	"itemscope":           true,
	"loop":                true,
	"multiple":            true,
	"muted":               true,
	"nomodule":            true,
	"novalidate":          true,
	"open":                true,
	"playsinline":         true,
	"readonly":            true,
	"required":            true,
	"reversed":            true,
	"selected":            true,
	"typemustmatch":       true,
}

// IsBooleanAttribute returns true if the normalized attribute name is a
// boolean attribute.
func IsBooleanAttribute(name string) bool {
	return booleanAttributes[name]
}

// enumeratedAttributes are attributes restricted to a fixed vocabulary.
// A boolean prop value for one of these is rendered as "true"/"false"
// text rather than being dropped.
var enumeratedAttributes = map[string]bool{
	"autocapitalize":  true,
	"autocomplete":    true,
	"charset":         true,
	"contenteditable": true,
	"crossorigin":     true,
	"decoding":        true,
	"dir":             true,
	"draggable":       true,
	"enctype":         true,
	"formenctype":     true,
	"formmethod":      true,
	"http-equiv":      true,
	"inputmode":       true,
	"kind":            true,
	"method":          true,
	"preload":         true,
	"scope":           true,
	"shape":           true,
	"spellcheck":      true,
	"translate":       true,
	"type":            true,
	"wrap":            true,
}

// IsEnumeratedAttribute returns true if the normalized attribute name is
// an enumerated attribute.
func IsEnumeratedAttribute(name string) bool {
	return enumeratedAttributes[name]
}

// IsMeaningfulBooleanValue returns true if a boolean prop value under
// this attribute carries meaning in markup: boolean attributes render by
// presence, and data-/aria-/enumerated attributes render the literal
// "true"/"false". Any other boolean prop is an internal flag and must
// not leak into markup.
func IsMeaningfulBooleanValue(rawName, normalizedName string) bool {
	if IsBooleanAttribute(normalizedName) {
		return true
	}
	if strings.HasPrefix(normalizedName, "data-") || strings.HasPrefix(normalizedName, "aria-") {
		return true
	}
	return IsEnumeratedAttribute(normalizedName)
}

// IsInternalProp returns true for reserved prop keys that are traversal
// metadata and must never render as attributes.
func IsInternalProp(rawName string) bool {
	return rawName == "key" || rawName == "children"
}

// unitlessStyles are style properties whose numeric values render
// without an implicit px suffix.
var unitlessStyles = map[string]bool{
	"animation":               true,
	"animationIterationCount": true,
	"baselineShift":           true,
	"borderImageOutset":       true,
	"borderImageSlice":        true,
	"borderImageWidth":        true,
	"columnCount":             true,
	"cx":                      true,
	"cy":                      true,
	"fillOpacity":             true,
	"flexGrow":                true,
	"flexShrink":              true,
	"floodOpacity":            true,
	"fontWeight":              true,
	"gridColumnEnd":           true,
	"gridColumnStart":         true,
	"gridRowEnd":              true,
	"gridRowStart":            true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"r":                       true,
	"rx":                      true,
	"ry":                      true,
	"shapeImageThreshold":     true,
	"stopOpacity":             true,
	"strokeDasharray":         true,
	"strokeDashoffset":        true,
	"strokeMiterlimit":        true,
	"strokeOpacity":           true,
	"strokeWidth":             true,
	"tabSize":                 true,
	"widows":                  true,
	"x":                       true,
	"y":                       true,
	"zIndex":                  true,
	"zoom":                    true,
}

// IsUnitlessStyle returns true if the camel-case style property renders
// numeric values without a px suffix.
func IsUnitlessStyle(property string) bool {
	return unitlessStyles[property]
}
