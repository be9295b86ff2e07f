package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "navigation.Push",
		Kind: KindRoute,
		Err:  stderrors.New("boom"),
	}
	want := "navigation.Push [route]: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithPath(t *testing.T) {
	err := &Error{
		Op:   "navigation.Push",
		Kind: KindRoute,
		Path: "/missing",
		Err:  stderrors.New("no route"),
	}
	if got := err.Error(); !strings.Contains(got, "path=/missing") {
		t.Errorf("error string %q should contain %q", got, "path=/missing")
	}
}

func TestErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := &Error{Op: "x", Kind: KindRender, Err: sentinel}
	if !stderrors.Is(err, sentinel) {
		t.Error("expected errors.Is to find the wrapped sentinel")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConstruct, "construct"},
		{KindRoute, "route"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
		{KindBuild, "build"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "core.Runtime.Update"
	if got, want := err.Error(), "panic in core.Runtime.Update: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("inner")
	if !stderrors.Is(&PanicError{Value: sentinel}, sentinel) {
		t.Error("expected PanicError to unwrap an error value")
	}
	if (&PanicError{Value: 42}).Unwrap() != nil {
		t.Error("expected nil Unwrap for non-error panic values")
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	SetHandler(&testHandler{onError: func(err *Error) { captured = err }})
	defer SetHandler(nil)

	Report(&Error{Op: "test.op", Kind: KindConfig, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	SetHandler(&testHandler{
		onError: func(*Error) { called = true },
		onPanic: func(*PanicError) { called = true },
	})
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got *PanicError
	func() {
		defer RecoverWithCallback("test.callback", func(p *PanicError) { got = p })
		panic("callback panic")
	}()

	if got == nil || got.Value != "callback panic" {
		t.Fatalf("callback got %v, want panic value %q", got, "callback panic")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&Error{Op: "core.Runtime.Update", Kind: KindRender, Err: stderrors.New("bad child")})
	if got, want := buf.String(), "[ember error] core.Runtime.Update: bad child\n"; got != want {
		t.Errorf("HandleError wrote %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&Error{Op: "navigation.Push", Kind: KindRoute, Path: "/x", Err: stderrors.New("missing")})
	if got := buf.String(); !strings.Contains(got, "[route] path=/x: missing") {
		t.Errorf("verbose HandleError wrote %q", got)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "widgets.Container", Value: "oops", StackTrace: "frame"})
	if got := buf.String(); !strings.Contains(got, "[ember panic] widgets.Container: oops") || !strings.Contains(got, "frame") {
		t.Errorf("HandlePanic wrote %q", got)
	}
}
