package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code classifies failures surfaced to the user.
type Code int

const (
	// core err
	ErrCodeInputOverflow Code = 1101

	// input err
	ErrCodeFileNotFound            Code = 1201
	ErrCodeInvalidInvocationFormat Code = 1202
	ErrCodeUnexpectedEndOfInput    Code = 1203
	ErrCodeReadFailure             Code = 1204

	// verification err
	ErrCodeDigestMismatch Code = 1301
	ErrCodeInvalidDigest  Code = 1302

	// storage err
	ErrCodeHistory Code = 1401

	// other err
	ErrCodeUnknown Code = 1701
)

var codeNames = map[Code]string{
	ErrCodeInputOverflow:           "InputOverflow",
	ErrCodeFileNotFound:            "FileNotFound",
	ErrCodeInvalidInvocationFormat: "InvalidInvocationFormat",
	ErrCodeUnexpectedEndOfInput:    "UnexpectedEndOfInput",
	ErrCodeReadFailure:             "ReadFailure",
	ErrCodeDigestMismatch:          "DigestMismatch",
	ErrCodeInvalidDigest:           "InvalidDigest",
	ErrCodeHistory:                 "History",
	ErrCodeUnknown:                 "Unknown",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Recoverable reports whether the interaction loop may keep running after
// an error with this code.
func (c Code) Recoverable() bool {
	return c != ErrCodeUnexpectedEndOfInput
}

// Error pairs a Code with the underlying failure.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (e *Error) Cause() error {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Err: pkgerrors.New(msg)}
}

// Errorf is like New with a format string.
func Errorf(code Code, format string, args ...interface{}) error {
	return &Error{Code: code, Err: pkgerrors.Errorf(format, args...)}
}

// Wrap annotates err with msg and tags it with code. Wrap returns nil when
// err is nil.
func Wrap(code Code, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: pkgerrors.Wrap(err, msg)}
}

// CodeOf returns the code of the outermost Error in err's chain, or
// ErrCodeUnknown.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		next, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		cause := next.Cause()
		if cause == err {
			break
		}
		err = cause
	}
	return ErrCodeUnknown
}
