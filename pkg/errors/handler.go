package errors

import (
	stderrors "errors"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultHandler receives everything reported through this package. Replace
// it with SetHandler; hosts that own the terminal route it to a file.
var DefaultHandler ErrorHandler = &LogHandler{}

var handlerMu sync.RWMutex

// SetHandler installs h as the global handler. nil restores a LogHandler
// writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report stamps err with the current time if it has none and hands it to
// the global handler.
func Report(err *RippleError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err != nil {
		handler().HandlePanic(err)
	}
}

// ReportError reports err under op and kind. Errors that already carry a
// RippleError keep their own op and kind.
func ReportError(op string, kind ErrorKind, err error) {
	if err == nil {
		return
	}
	var re *RippleError
	if !stderrors.As(err, &re) {
		re = &RippleError{Op: op, Kind: kind, Err: err}
	}
	Report(re)
}

func panicError(op string, r any) *PanicError {
	return &PanicError{Op: op, Value: r, StackTrace: captureStack(4), Timestamp: time.Now()}
}

// Recover reports a panic in progress. It must be called directly by a
// deferred statement:
//
//	defer errors.Recover("engine.Frame")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicError(op, r))
	}
}

// RecoverWithCallback reports a panic in progress and then passes its value
// to callback, which typically converts it into a returned error.
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(panicError(op, r))
	if callback != nil {
		callback(r)
	}
}

// CaptureStack returns the caller's stack, one function and position per
// frame.
func CaptureStack() string { return captureStack(3) }

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		sb.WriteString(f.Function + "\n\t" + f.File + ":" + strconv.Itoa(f.Line) + "\n")
		if !more {
			return sb.String()
		}
	}
}
