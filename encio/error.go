package encio

import (
	"errors"
	"fmt"
	"runtime"
)

// Error handling in stf is designed to make it easy to tell bad data apart from bad io,
// and to reuse a small set of error kinds for as many cases as possible, with extra information wrapped as applicable.
// Panics are only used when there is a clear misuse of the library; programmer error.
//
// Every error returned wraps one of the sentinels below, and can be checked with
//
//	if errors.Is(err, encio.ErrTruncated) {
//		// the stream ended early
//	}
//
// IOError wraps errors coming from an io.Reader or io.Writer, and Error wraps everything else.
var (
	// ErrTruncated is returned when fewer bytes remain than a declared length or a fixed width requires.
	ErrTruncated = errors.New("truncated input")

	// ErrInvalidEncoding is returned when bytes are present but are not valid for the declared primitive kind,
	// i.e. a bool byte other than 0 or 1, or text that is not UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnknownType is returned when a tag has no registry entry.
	ErrUnknownType = errors.New("unknown type")

	// ErrDuplicateTag is returned when registering a tag that is already bound.
	ErrDuplicateTag = errors.New("duplicate tag")

	// ErrMalformed is returned when a type specific invariant is violated,
	// for example an array whose element count does not match its data.
	ErrMalformed = errors.New("malformed data")

	// ErrBadType is returned when a value's Go type cannot be used where it was given.
	ErrBadType = errors.New("bad type")

	// ErrNilNode is returned when encoding a nil node.
	ErrNilNode = errors.New("nil node")

	// ErrTooBig is returned when a length exceeds the configured limits.
	ErrTooBig = errors.New("too big")

	// ErrSealed is returned when registering into a registry that has already been used for decoding.
	ErrSealed = errors.New("registry sealed")
)

// NewError returns an Error wrapping err with message.
// The calling function's name is recorded, skipping skip callers.
func NewError(err error, message string, skip int) error {
	return Error{
		Err:     err,
		Message: message,
		Caller:  GetCaller(skip + 1),
	}
}

// Errorf is NewError with a formatted message, recording the immediate caller.
func Errorf(err error, format string, args ...interface{}) error {
	return Error{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
		Caller:  GetCaller(1),
	}
}

// Error is returned when an encoding or decoding error is encountered.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap()
func (e Error) Unwrap() error {
	return e.Err
}

// NewIOError returns an IOError wrapping err.
// err is typically the error returned from the io.Reader/io.Writer, or another error describing why it isn't operating correctly.
// If message is empty, it is filled with the calling function's name.
func NewIOError(err error, message string, skip int) error {
	if err == nil {
		return NewError(errors.New("unknown error"), "trying to create new IOError", 0)
	}
	if message == "" {
		message = "in " + GetCaller(skip+1)
	}

	return IOError{
		Err:     err,
		Message: message,
	}
}

// IOError is returned when io errors occur.
type IOError struct {
	Err     error
	Message string
}

// Error implements error
func (e IOError) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap implements errors's Unwrap()
func (e IOError) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 returns the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
