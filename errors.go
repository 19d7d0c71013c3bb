package textseg

import "errors"

// Sentinel errors returned by fallible constructors. Iteration itself
// never fails: unexpected characters classify as the default class and
// the scan continues.
var (
	// ErrInvalidConfiguration is returned by NewSegmenter when the
	// requested segmentation kind is not supported by the rule table.
	ErrInvalidConfiguration = errors.New("textseg: invalid configuration")

	// ErrInvalidInput is returned by iterator constructors when the
	// buffer is malformed for its stated encoding, such as a UTF-16
	// byte buffer with an odd length.
	ErrInvalidInput = errors.New("textseg: invalid input")

	// ErrAllocationFailure is reserved for foreign bindings whose
	// allocators can fail during construction.
	ErrAllocationFailure = errors.New("textseg: allocation failure")

	// ErrMalformedTable is returned by NewRuleTable when the supplied
	// rule data fails validation.
	ErrMalformedTable = errors.New("textseg: malformed rule table")
)

// ErrorCode is the numeric error taxonomy surfaced to foreign callers
// through the handle layer's Result values.
type ErrorCode int32

const (
	ErrorNone ErrorCode = iota
	ErrorInvalidConfiguration
	ErrorInvalidInput
	ErrorAllocationFailure
	ErrorMalformedTable
	ErrorUnknown
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "none"
	case ErrorInvalidConfiguration:
		return "invalid configuration"
	case ErrorInvalidInput:
		return "invalid input"
	case ErrorAllocationFailure:
		return "allocation failure"
	case ErrorMalformedTable:
		return "malformed rule table"
	}
	return "unknown"
}

// CodeOf maps an error from this package to its ErrorCode.
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, ErrInvalidConfiguration):
		return ErrorInvalidConfiguration
	case errors.Is(err, ErrInvalidInput):
		return ErrorInvalidInput
	case errors.Is(err, ErrAllocationFailure):
		return ErrorAllocationFailure
	case errors.Is(err, ErrMalformedTable):
		return ErrorMalformedTable
	}
	return ErrorUnknown
}
