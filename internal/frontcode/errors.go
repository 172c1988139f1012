package frontcode

import "errors"

var (
	// ErrMalformedRecord is returned by Decode for an empty record, an
	// unknown count marker, or a count longer than the prior word.
	ErrMalformedRecord = errors.New("frontcode: malformed record")

	// ErrPrefixLengthOverflow is returned by Encode when the shared prefix
	// does not fit in a single count marker.
	ErrPrefixLengthOverflow = errors.New("frontcode: shared prefix length overflow")
)
