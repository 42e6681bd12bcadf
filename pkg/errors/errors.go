// Package errors provides structured error handling for the Ripple framework.
//
// Layout, render-tree construction and animation are total and never return
// errors. The only fault they raise is a structural mismatch, which is a
// programming error and is panicked as a *MismatchError. The outer surfaces
// (configuration, scene files, pixel sinks) report RippleErrors.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration file.
	KindConfig
	// KindScene indicates a scene description that could not be parsed.
	KindScene
	// KindTarget indicates a pixel sink failure (screen init, image encode).
	KindTarget
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindMismatch indicates a structural mismatch between two trees.
	KindMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindScene:
		return "scene"
	case KindTarget:
		return "target"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// RippleError represents a structured error in the Ripple framework.
type RippleError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RippleError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RippleError) Unwrap() error {
	return e.Err
}

// New returns a RippleError for op wrapping err. A nil err yields nil.
func New(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &RippleError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// WithPath is like New but records the file involved.
func WithPath(op string, kind ErrorKind, path string, err error) error {
	if err == nil {
		return nil
	}
	return &RippleError{Op: op, Kind: kind, Path: path, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of the first RippleError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var re *RippleError
	if stderrors.As(err, &re) {
		return re.Kind
	}
	var me *MismatchError
	if stderrors.As(err, &me) {
		return KindMismatch
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panicked error value.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ParseError represents a value in a configuration or scene file that could
// not be decoded.
type ParseError struct {
	// Field is the dotted path of the offending value.
	Field string
	// Expected describes what was expected.
	Expected string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: expected %s, got %v", e.Field, e.Expected, e.Got)
}

// MismatchError reports that two structures expected to share a shape did
// not: a layout rendered by a different view, or a render tree joined with a
// tree of another shape.
type MismatchError struct {
	// Op is the operation that detected the mismatch.
	Op string
	// Want is the type that was expected.
	Want string
	// Got is the type that was found.
	Got string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("structural mismatch in %s: want %s, got %s", e.Op, e.Want, e.Got)
}

// Mismatch builds a MismatchError from example values of the expected and
// actual shapes.
func Mismatch(op string, want, got any) *MismatchError {
	return &MismatchError{Op: op, Want: fmt.Sprintf("%T", want), Got: fmt.Sprintf("%T", got)}
}

// MismatchCount builds a MismatchError for sequences of differing length.
func MismatchCount(op string, want, got int) *MismatchError {
	return &MismatchError{Op: op, Want: fmt.Sprintf("%d children", want), Got: fmt.Sprintf("%d children", got)}
}

// IsMismatch reports whether v (an error or a recovered panic value) is a
// structural mismatch.
func IsMismatch(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var me *MismatchError
	return stderrors.As(err, &me)
}

// ErrorHandler receives errors reported by the Ripple framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RippleError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
