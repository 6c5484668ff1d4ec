package serialize

import "testing"

func TestIsSelfClosing(t *testing.T) {
	selfClosing := []string{
		"area", "base", "br", "col", "command", "embed", "hr", "img",
		"input", "keygen", "link", "meta", "param", "source", "track", "wbr",
	}
	for _, tag := range selfClosing {
		if !IsSelfClosing(tag) {
			t.Errorf("IsSelfClosing(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "span", "p", "textarea", ""} {
		if IsSelfClosing(tag) {
			t.Errorf("IsSelfClosing(%q) = true, want false", tag)
		}
	}
}

func TestIsInline(t *testing.T) {
	for _, tag := range []string{"a", "span", "em", "strong", "textarea", "button", "script"} {
		if !IsInline(tag) {
			t.Errorf("IsInline(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"div", "p", "section", "pre", ""} {
		if IsInline(tag) {
			t.Errorf("IsInline(%q) = true, want false", tag)
		}
	}
}

func TestIsMeaningfulBooleanValue(t *testing.T) {
	tests := []struct {
		rawName        string
		normalizedName string
		want           bool
	}{
		{"disabled", "disabled", true},
		{"checked", "checked", true},
		{"data-open", "data-open", true},
		{"aria-hidden", "aria-hidden", true},
		{"contentEditable", "contenteditable", true},
		{"spellCheck", "spellcheck", true},
		{"customFlag", "customflag", false},
		{"title", "title", false},
	}

	for _, tt := range tests {
		if got := IsMeaningfulBooleanValue(tt.rawName, tt.normalizedName); got != tt.want {
			t.Errorf("IsMeaningfulBooleanValue(%q, %q) = %v, want %v",
				tt.rawName, tt.normalizedName, got, tt.want)
		}
	}
}

func TestIsInternalProp(t *testing.T) {
	for _, name := range []string{"key", "children"} {
		if !IsInternalProp(name) {
			t.Errorf("IsInternalProp(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"class", "id", "value", "style"} {
		if IsInternalProp(name) {
			t.Errorf("IsInternalProp(%q) = true, want false", name)
		}
	}
}

func TestIsUnitlessStyle(t *testing.T) {
	for _, prop := range []string{"opacity", "lineHeight", "zIndex", "flexGrow", "fontWeight"} {
		if !IsUnitlessStyle(prop) {
			t.Errorf("IsUnitlessStyle(%q) = false, want true", prop)
		}
	}
	for _, prop := range []string{"width", "margin", "fontSize", "top"} {
		if IsUnitlessStyle(prop) {
			t.Errorf("IsUnitlessStyle(%q) = true, want false", prop)
		}
	}
}
