package shell

import (
	"strings"

	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/source"
)

const (
	textPrefix = source.KindText + ":"
	filePrefix = source.KindFile + ":"
	exitWord   = "exit"

	invalidFormatMsg = "Invalid input format. Please start with 'file:' or 'text:'."
)

// Request is one parsed line of user input.
type Request struct {
	Kind    string
	Payload string
}

// IsExit reports whether line asks the loop to quit.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), exitWord)
}

// Parse splits a trimmed line into its kind and payload. Prefixes are case
// sensitive and the payload is trimmed of surrounding whitespace.
func Parse(line string) (*Request, error) {
	switch {
	case strings.HasPrefix(line, filePrefix):
		return &Request{
			Kind:    source.KindFile,
			Payload: strings.TrimSpace(line[len(filePrefix):]),
		}, nil
	case strings.HasPrefix(line, textPrefix):
		return &Request{
			Kind:    source.KindText,
			Payload: strings.TrimSpace(line[len(textPrefix):]),
		}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInvocationFormat, invalidFormatMsg)
	}
}
