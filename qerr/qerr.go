// Package qerr defines the failure kinds of the query codec. Concrete
// sentinel values are compared via errors.Is, while Kind groups them for
// callers interested in the class of the failure only.
package qerr

import "errors"

type Kind uint8

const (
	// UnsupportedEncoding: the encoding mode is not one of the defined ones
	UnsupportedEncoding Kind = iota + 1
	// MalformedQuery: the raw query text contains forbidden characters
	MalformedQuery
	// InvalidPair: a pair on the build side has an unusable key or value
	InvalidPair
	// TypeMismatch: an input has a shape the codec cannot interpret at all
	TypeMismatch
)

type Error struct {
	Message string
	Kind    Kind
}

func New(kind Kind, message string) error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// KindOf returns the kind of the error, or zero if the error was not
// produced by this package
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

var (
	ErrUnsupportedEncoding = New(UnsupportedEncoding, "unknown or unsupported encoding mode")

	ErrMalformedQuery = New(MalformedQuery, "query contains control characters")

	ErrInvalidPairKey   = New(InvalidPair, "pair key is absent or not a scalar")
	ErrInvalidPairValue = New(InvalidPair, "pair value is neither a scalar nor absent")

	ErrPairNotSliceable = New(TypeMismatch, "entry is not a pair-like sequence")
	ErrEmptySeparator   = New(TypeMismatch, "separator must not be empty")
)
