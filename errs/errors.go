// Package errs defines the error values shared by all varix packages.
//
// Every fallible codec operation returns one of the sentinel errors below,
// possibly wrapped with additional context. Callers should match with
// errors.Is rather than comparing directly:
//
//	n, err := codec.Encode(value, buf)
//	if errors.Is(err, errs.ErrBufferTooSmall) {
//	    // grow the buffer and retry
//	}
//
// Buffer-capacity failures carry the exact byte counts via SizeError, which
// callers can recover with errors.As to size a retry buffer precisely.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall indicates the output buffer cannot hold the encoded
	// value. The concrete error is a *SizeError carrying the needed and
	// actual byte counts.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInputTooShort indicates the input ended while the continuation bit
	// of the last byte read was still set: more bytes were promised than
	// were available. It distinguishes a truncated stream from a corrupt one.
	ErrInputTooShort = errors.New("input too short")

	// ErrOverflow indicates more continuation groups were read than the
	// target integer width can represent, signalling either corrupted data
	// or a width mismatch between encoder and decoder.
	ErrOverflow = errors.New("varint overflow")

	// ErrInvalidEncoding indicates a tagged-value header byte that does not
	// match any known (signedness, width) pair.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// SizeError reports a buffer-capacity failure with the number of bytes the
// operation needed and the capacity it actually had. It wraps
// ErrBufferTooSmall so errors.Is(err, ErrBufferTooSmall) matches.
type SizeError struct {
	Needed int // bytes required to complete the operation
	Actual int // bytes available in the provided buffer
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("buffer too small: need %d bytes, have %d", e.Needed, e.Actual)
}

// Unwrap makes the error match ErrBufferTooSmall under errors.Is.
func (e *SizeError) Unwrap() error {
	return ErrBufferTooSmall
}
