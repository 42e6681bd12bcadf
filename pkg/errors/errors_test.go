package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"
)

func TestRippleErrorString(t *testing.T) {
	err := &RippleError{
		Op:   "config.Load",
		Kind: KindConfig,
		Err:  &ParseError{Field: "display.width", Expected: "positive integer", Got: -1},
	}
	got := err.Error()
	want := "config.Load [config]: invalid display.width: expected positive integer, got -1"
	if got != want {
		t.Errorf("RippleError.Error() = %q, want %q", got, want)
	}
}

func TestRippleErrorWithPath(t *testing.T) {
	err := WithPath("scene.Load", KindScene, "demo.yaml", fs.ErrNotExist)
	if !strings.Contains(err.Error(), "path=demo.yaml") {
		t.Errorf("error string %q should contain the path", err.Error())
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("expected RippleError to unwrap to the cause")
	}
	if KindOf(fmt.Errorf("wrapped: %w", err)) != KindScene {
		t.Errorf("KindOf = %v, want scene", KindOf(err))
	}
}

func TestNewNil(t *testing.T) {
	if New("op", KindRender, nil) != nil {
		t.Error("New with a nil cause should return nil")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindScene, "scene"},
		{KindTarget, "target"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindMismatch, "mismatch"},
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
		Op:        "engine.Frame",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in engine.Frame: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestMismatch(t *testing.T) {
	err := Mismatch("render.Join", struct{}{}, 3)
	want := "structural mismatch in render.Join: want struct {}, got int"
	if err.Error() != want {
		t.Errorf("Mismatch = %q, want %q", err.Error(), want)
	}
	if !IsMismatch(err) {
		t.Error("IsMismatch should recognise a MismatchError")
	}
	if !IsMismatch(&PanicError{Value: err}) {
		t.Error("IsMismatch should see through a recovered panic")
	}
	if IsMismatch("not an error") {
		t.Error("IsMismatch should reject non-errors")
	}
	if KindOf(err) != KindMismatch {
		t.Errorf("KindOf = %v, want mismatch", KindOf(err))
	}
}

func TestReport(t *testing.T) {
	var capturedErr *RippleError
	handler := &testHandler{
		onError: func(err *RippleError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&RippleError{
		Op:   "test.op",
		Kind: KindTarget,
		Err:  &ParseError{Field: "f", Expected: "x", Got: nil},
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportError(t *testing.T) {
	var captured []*RippleError
	handler := &testHandler{
		onError: func(err *RippleError) {
			captured = append(captured, err)
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportError("target.Flush", KindTarget, fs.ErrClosed)
	ReportError("ignored", KindUnknown, New("config.Load", KindConfig, fs.ErrNotExist))
	ReportError("nil", KindUnknown, nil)

	if len(captured) != 2 {
		t.Fatalf("captured %d errors, want 2", len(captured))
	}
	if captured[0].Op != "target.Flush" || captured[0].Kind != KindTarget {
		t.Errorf("first = %+v", captured[0])
	}
	if captured[1].Op != "config.Load" {
		t.Errorf("existing RippleError should be reported as is, got op %q", captured[1].Op)
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic(Mismatch("test.recover", 1, "x"))
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if !IsMismatch(capturedPanic) {
		t.Errorf("Value = %v, want a mismatch", capturedPanic.Value)
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic("boom")
	}()
	if got != "boom" {
		t.Errorf("callback value = %v, want boom", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&RippleError{Op: "config.Load", Kind: KindConfig, Err: fs.ErrNotExist})
	h.HandlePanic(&PanicError{Op: "engine.Frame", Value: "boom"})

	want := "[ripple error] config.Load: file does not exist\n[ripple panic] engine.Frame: boom\n"
	if buf.String() != want {
		t.Errorf("log output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	verbose := &LogHandler{Out: &buf, Verbose: true}
	verbose.HandleError(&RippleError{Op: "scene.Load", Kind: KindScene, Path: "a.yaml", Err: fs.ErrNotExist})
	if !strings.Contains(buf.String(), "[scene] path=a.yaml") {
		t.Errorf("verbose output = %q", buf.String())
	}
}

type testHandler struct {
	onError func(*RippleError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *RippleError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
