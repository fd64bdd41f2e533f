// Package direrr collects the sentinel error values the editor core's
// other packages compare against. Most of the core never returns an
// error at all: navigation clamps, recognizers report a match with a
// bool, and codepoint decoding substitutes the replacement rune. These
// sentinels exist for the few spots that do fail (gap growth) and for
// callers that want to log a clamp/substitution event without each
// package inventing its own marker.
package direrr

import "errors"

// ErrOutOfMemory is returned when a gap buffer cannot grow to fit an
// insert. Never returned by any other operation.
var ErrOutOfMemory = errors.New("gapbuffer: allocation failed")

// ErrEncodingMalformed marks a codepoint decode that fell back to the
// Unicode replacement character after encountering invalid UTF-8. It is
// informational: CodepointAt never returns an error, it just advances
// one byte and yields utf8.RuneError; callers that want to log the
// event have this value to compare against.
var ErrEncodingMalformed = errors.New("text: malformed utf-8")

// ErrBoundsInvalid marks a caller-supplied range that was out of order
// or out of bounds and got clamped rather than rejected. Informational
// for the same reason as ErrEncodingMalformed.
var ErrBoundsInvalid = errors.New("bounds: invalid range")
