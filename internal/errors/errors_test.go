package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E101")
	if err.Category != CategoryDecode {
		t.Errorf("category = %q, want %q", err.Category, CategoryDecode)
	}
	if !strings.HasPrefix(err.Error(), "E101: ") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
	if err.Suggestion == "" {
		t.Error("registered error should carry its suggestion")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" || err.Message != "Unknown error" {
		t.Errorf("got %+v", err)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New("E201").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, should mention the cause", err.Error())
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E201") != nil {
		t.Error("FromError(nil) should be nil")
	}

	structured := New("E102")
	if got := FromError(structured, "E201"); got != structured {
		t.Error("structured errors should pass through unchanged")
	}

	plain := stderrors.New("boom")
	wrapped := FromError(plain, "E201")
	if wrapped.Code != "E201" || !stderrors.Is(wrapped, plain) {
		t.Errorf("got %+v", wrapped)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "bad flag %q", "--x")
	if err.Category != CategoryCLI {
		t.Errorf("category = %q", err.Category)
	}
	if err.Error() != `bad flag "--x"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
