package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestEaselErrorString(t *testing.T) {
	err := &EaselError{
		Op:   "test.operation",
		Kind: KindInput,
		Err:  errors.New("routing failed"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "test.operation") || !strings.Contains(got, "input") {
		t.Errorf("error string %q missing op or kind", got)
	}
}

func TestEaselErrorWithSource(t *testing.T) {
	err := &EaselError{
		Op:     "test.operation",
		Kind:   KindConfig,
		Source: "easel.yaml",
		Err:    errors.New("bad value"),
	}
	got := err.Error()
	want := "source=easel.yaml"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestEaselErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &EaselError{Op: "op", Kind: KindUnknown, Err: inner}
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, inner) {
		t.Error("expected errors.Is to reach the inner error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindInput, "input"},
		{KindTerminal, "terminal"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:    "scene.Canvas.Route",
		Value: "boom",
	}
	got := err.Error()
	want := "panic in scene.Canvas.Route: boom"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

// collectingHandler records everything reported to it.
type collectingHandler struct {
	errs   []*EaselError
	panics []*PanicError
}

func (c *collectingHandler) HandleError(err *EaselError) { c.errs = append(c.errs, err) }
func (c *collectingHandler) HandlePanic(err *PanicError) { c.panics = append(c.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	h := &collectingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&EaselError{Op: "op", Kind: KindInput, Err: errors.New("x")})
	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should fill in a zero timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &collectingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(h.panics))
	}
	if h.panics[0].Op != "test.op" {
		t.Errorf("Op = %q, want test.op", h.panics[0].Op)
	}
	if h.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&collectingHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { got = r })
		panic("value")
	}()

	if got != "value" {
		t.Errorf("callback received %v, want value", got)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&collectingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
