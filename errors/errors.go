package errors

import (
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// Kind categorizes the error
type Kind string

const (
	KindNullPointer    Kind = "null_pointer"    // pointer-returning native call yielded null
	KindNegativeReturn Kind = "negative_return" // integer-returning native call yielded < 0
	KindEmbeddedNUL    Kind = "embedded_nul"    // text destined for native code contains NUL
	KindInvalidPort    Kind = "invalid_port"    // port id not attached to a device
	KindNotSupported   Kind = "not_supported"   // operation outside what the target supports
	KindBadArgument    Kind = "bad_argument"    // caller-side contract violation
	KindClosed         Kind = "closed"          // handle used after Free/Close
	KindExhausted      Kind = "exhausted"       // bounded protocol ran out of room
	KindCallFailed     Kind = "call_failed"     // guest or native invocation trapped
)

// Error is the structured error type used throughout the binding
type Error struct {
	Value  any
	Cause  error
	Op     string
	Kind   Kind
	Detail string
	Code   int32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(e.Op)
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Code != 0 {
		fmt.Fprintf(&b, " (code %d)", e.Code)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty Op
// matches any Op, so callers can test for a kind alone:
//
//	errors.Is(err, &Error{Kind: KindNullPointer})
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Op != "" && t.Op != e.Op {
			return false
		}
		return t.Kind == e.Kind
	}
	return false
}

// Errno returns the native errno for negative-return errors, or 0.
func (e *Error) Errno() syscall.Errno {
	if e.Kind != KindNegativeReturn || e.Code >= 0 {
		return 0
	}
	return syscall.Errno(-e.Code)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op string, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Code sets the raw native return code
func (b *Builder) Code(code int32) *Builder {
	b.err.Code = code
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NullPointer creates an error for a pointer-returning call that yielded null
func NullPointer(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNullPointer,
		Detail: "returned null",
	}
}

// NegativeReturn creates an error for an integer-returning call that yielded
// a negative code. The code is kept raw; when it sits in the errno domain
// the errno becomes the cause and its name the detail.
func NegativeReturn(op string, code int32) *Error {
	e := &Error{
		Op:   op,
		Kind: KindNegativeReturn,
		Code: code,
	}
	if code < 0 {
		errno := syscall.Errno(-code)
		e.Cause = errno
		if name := unix.ErrnoName(errno); name != "" {
			e.Detail = name
		}
	}
	return e
}

// EmbeddedNUL creates an error for text that cannot cross the boundary
// because it contains an interior NUL byte
func EmbeddedNUL(op string, pos int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmbeddedNUL,
		Detail: fmt.Sprintf("embedded NUL at byte %d", pos),
		Value:  pos,
	}
}

// InvalidPort creates an error for a port id with no attached device
func InvalidPort(op string, port uint16) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidPort,
		Detail: fmt.Sprintf("port %d is not a valid device", port),
		Value:  port,
	}
}

// NotSupported creates an error for an operation the target cannot perform
func NotSupported(op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNotSupported,
		Detail: what,
	}
}

// BadArgument creates an error for a caller-side contract violation
func BadArgument(op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindBadArgument,
		Detail: detail,
	}
}

// Closed creates an error for a handle used after Free or Close
func Closed(op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s used after close", what),
	}
}

// Exhausted creates an error for a bounded protocol that ran out of room
func Exhausted(op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindExhausted,
		Detail: detail,
	}
}

// CallFailed wraps a trap or invocation failure from a guest or native call
func CallFailed(op string, cause error) *Error {
	return &Error{
		Op:    op,
		Kind:  KindCallFailed,
		Cause: cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op string, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingExport represents a single export the guest module failed to provide
type MissingExport struct {
	Name      string // e.g., "filter"
	Signature string // e.g., "(i32, i32) -> i32"
}

// MissingExportsError is returned when a guest filter module lacks the
// exports the packet path requires
type MissingExportsError struct {
	Exports []MissingExport
}

// NewMissingExportsError creates an error listing the absent exports
func NewMissingExportsError(exports []MissingExport) *MissingExportsError {
	return &MissingExportsError{Exports: exports}
}

func (e *MissingExportsError) Error() string {
	if len(e.Exports) == 0 {
		return "[filter] bad_argument: no exports specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "guest module missing %d export(s):", len(e.Exports))
	for _, exp := range e.Exports {
		b.WriteString("\n  - ")
		b.WriteString(exp.Name)
		if exp.Signature != "" {
			b.WriteString(": ")
			b.WriteString(exp.Signature)
		}
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *MissingExportsError) Is(target error) bool {
	_, ok := target.(*MissingExportsError)
	return ok
}
