package errors

import (
	stderrors "errors"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"massnet.org/shadigest/testutil"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"nil", nil, ErrCodeUnknown},
		{"plain", io.ErrUnexpectedEOF, ErrCodeUnknown},
		{"new", New(ErrCodeFileNotFound, "File not found: x"), ErrCodeFileNotFound},
		{"wrap", Wrap(ErrCodeReadFailure, io.ErrClosedPipe, "read"), ErrCodeReadFailure},
		{"outer pkg wrap", pkgerrors.Wrap(New(ErrCodeInputOverflow, "too long"), "digest"), ErrCodeInputOverflow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.code, CodeOf(test.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeReadFailure, nil, "ignored"))

	err := Wrap(ErrCodeReadFailure, io.ErrClosedPipe, "read stdin")
	assert.Equal(t, "read stdin: io: read/write on closed pipe", err.Error())
	assert.Equal(t, io.ErrClosedPipe, pkgerrors.Cause(err))
	assert.True(t, stderrors.Is(err, io.ErrClosedPipe))

	// The code tag does not change the message of the wrapped error.
	assert.True(t, testutil.SameErrorString(err, pkgerrors.Wrap(io.ErrClosedPipe, "read stdin")))
	assert.False(t, testutil.SameErrorString(err, io.ErrClosedPipe))
	assert.False(t, testutil.SameErrorString(err, nil))
	assert.True(t, testutil.SameErrorString(Wrap(ErrCodeReadFailure, nil, "ignored"), nil))
}

func TestErrorf(t *testing.T) {
	err := Errorf(ErrCodeFileNotFound, "File not found: %s", "a.txt")
	assert.Equal(t, "File not found: a.txt", err.Error())
	assert.Equal(t, ErrCodeFileNotFound, CodeOf(err))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "FileNotFound", ErrCodeFileNotFound.String())
	assert.Equal(t, "Code(42)", Code(42).String())
}

func TestRecoverable(t *testing.T) {
	assert.True(t, ErrCodeFileNotFound.Recoverable())
	assert.True(t, ErrCodeInvalidInvocationFormat.Recoverable())
	assert.True(t, ErrCodeInputOverflow.Recoverable())
	assert.False(t, ErrCodeUnexpectedEndOfInput.Recoverable())
}
