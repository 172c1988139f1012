// Package frontcode implements front-coding (prefix compression) of sorted
// word lists.
//
// Each word is encoded relative to the word before it as a single count
// marker character followed by the suffix the two words do not share:
//
//	apple        -> !apple
//	application  -> &ication   ('&' is marker 5)
//	apply        -> %y         ('%' is marker 4)
//
// The codec is stateless. Callers own the rolling prior word and pass it to
// every call: the plain word for Encode, the decoded word for Decode.
package frontcode

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MarkerBase is the marker for a shared prefix of length zero.
	MarkerBase = '!'

	// MaxPrefixLen is the largest shared prefix a single marker can carry.
	// Markers therefore span '!' through '~', all printable non-space ASCII.
	MaxPrefixLen = '~' - MarkerBase
)

// PlainWord is one line of the original sorted list, stripped of
// surrounding whitespace.
type PlainWord string

// EncodedRecord is a PlainWord encoded against its predecessor.
type EncodedRecord string

// Marker returns the marker character for a shared prefix of k characters.
func Marker(k int) (rune, error) {
	if k < 0 || k > MaxPrefixLen {
		return 0, fmt.Errorf("%w: %d characters, limit is %d", ErrPrefixLengthOverflow, k, MaxPrefixLen)
	}
	return rune(MarkerBase + k), nil
}

// Count returns the shared prefix length carried by a marker character.
func Count(marker rune) (int, error) {
	if marker < MarkerBase || marker > MarkerBase+MaxPrefixLen {
		return 0, fmt.Errorf("%w: invalid count marker %q", ErrMalformedRecord, marker)
	}
	return int(marker - MarkerBase), nil
}

// SharedPrefixLen returns the number of leading characters (code points)
// that a and b have in common.
func SharedPrefixLen(a, b PlainWord) int {
	n := 0
	for len(a) > 0 && len(b) > 0 {
		_, sa := utf8.DecodeRuneInString(string(a))
		_, sb := utf8.DecodeRuneInString(string(b))
		if a[:sa] != b[:sb] {
			break
		}
		a, b = a[sa:], b[sb:]
		n++
	}
	return n
}

// Encode encodes word relative to prior, the word immediately before it in
// sort order ("" for the first word of a stream).
//
// A shared prefix longer than MaxPrefixLen is reported as
// ErrPrefixLengthOverflow rather than truncated.
func Encode(word, prior PlainWord) (EncodedRecord, error) {
	k := SharedPrefixLen(word, prior)
	marker, err := Marker(k)
	if err != nil {
		return "", err
	}
	suffix := string(word[byteOffset(string(word), k):])
	return EncodedRecord(string(marker) + suffix), nil
}

// Decode reverses Encode. prior must be the previously decoded word ("" for
// the first record of a stream).
func Decode(rec EncodedRecord, prior PlainWord) (PlainWord, error) {
	k, suffix, err := rec.Split()
	if err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(string(prior)); k > n {
		return "", fmt.Errorf("%w: shared prefix %d exceeds prior length %d", ErrMalformedRecord, k, n)
	}
	return prior[:byteOffset(string(prior), k)] + PlainWord(suffix), nil
}

// Split parses the record into its shared prefix length and literal suffix.
func (r EncodedRecord) Split() (int, string, error) {
	if r == "" {
		return 0, "", fmt.Errorf("%w: empty record", ErrMalformedRecord)
	}
	marker, size := utf8.DecodeRuneInString(string(r))
	k, err := Count(marker)
	if err != nil {
		return 0, "", err
	}
	return k, string(r[size:]), nil
}

// byteOffset returns the byte index of the n-th code point of s, or len(s)
// when s has fewer than n code points.
func byteOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
