package y4m

import (
	"errors"
	"fmt"
)

// Kind classifies writer errors.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	InvalidHandle
	MissingPixelBuffer
	MissingPlaneBuffers
	InvalidDimensions
	InvalidFrameRate
	MissingOutputTarget
	SinkOpenFailed
	SinkWriteFailed
	ShortWrite
	NotOpen
)

// String returns a human readable description of the kind.
func (k Kind) String() string {
	switch k {
	case InvalidHandle:
		return "invalid writer handle"
	case MissingPixelBuffer:
		return "missing pixel buffer"
	case MissingPlaneBuffers:
		return "missing plane buffers"
	case InvalidDimensions:
		return "invalid dimensions"
	case InvalidFrameRate:
		return "invalid frame rate"
	case MissingOutputTarget:
		return "missing output target"
	case SinkOpenFailed:
		return "failed to open output"
	case SinkWriteFailed:
		return "failed to write output"
	case ShortWrite:
		return "short write"
	case NotOpen:
		return "stream is not open"
	default:
		return "unknown error"
	}
}

// Fatal reports whether an error of this kind ends the stream.
func (k Kind) Fatal() bool {
	return k == SinkWriteFailed || k == ShortWrite
}

// Error is the error type returned by Writer operations.
type Error struct {
	Op     string // "open" or "frame"
	Kind   Kind
	Detail string
	Err    error // Underlying I/O error, if any
}

func newError(op string, kind Kind, format string, args ...interface{}) *Error {
	e := &Error{Op: op, Kind: kind}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}

func (e *Error) Error() string {
	msg := "y4m"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	msg += ": " + e.Kind.String()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotOpen)
// works regardless of operation and detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidHandle       = &Error{Kind: InvalidHandle}
	ErrMissingPixelBuffer  = &Error{Kind: MissingPixelBuffer}
	ErrMissingPlaneBuffers = &Error{Kind: MissingPlaneBuffers}
	ErrInvalidDimensions   = &Error{Kind: InvalidDimensions}
	ErrInvalidFrameRate    = &Error{Kind: InvalidFrameRate}
	ErrMissingOutputTarget = &Error{Kind: MissingOutputTarget}
	ErrSinkOpenFailed      = &Error{Kind: SinkOpenFailed}
	ErrSinkWriteFailed     = &Error{Kind: SinkWriteFailed}
	ErrShortWrite          = &Error{Kind: ShortWrite}
	ErrNotOpen             = &Error{Kind: NotOpen}
)

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
