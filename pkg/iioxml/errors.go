package iioxml

import "errors"

// Codec errors. All failures returned by this package wrap one of
// these, so callers can classify them with errors.Is.
var (
	// ErrUnrecognizedDocument reports a document whose root element is
	// not the expected tag.
	ErrUnrecognizedDocument = errors.New("unrecognized description document")

	// ErrMissingField reports a required attribute that is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedFormat reports a format descriptor that does not
	// match the mini-language grammar.
	ErrMalformedFormat = errors.New("malformed format descriptor")

	// ErrMalformedIndex reports a scan-element index that is not a
	// non-negative integer.
	ErrMalformedIndex = errors.New("malformed scan-element index")

	// ErrMalformedScale reports a scale value that is not a float
	// literal in range.
	ErrMalformedScale = errors.New("malformed scale value")
)
