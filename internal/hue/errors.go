package hue

import "errors"

var (
	// ErrRange is returned by Encode when a field value is outside the range
	// the wire format can carry.
	ErrRange = errors.New("value out of range")

	// ErrTruncated is returned by Decode when the input ends before a field
	// announced in the flag word.
	ErrTruncated = errors.New("truncated input")

	// ErrMalformedGradient is returned by Decode when the gradient size byte
	// disagrees with the colour count.
	ErrMalformedGradient = errors.New("malformed gradient")
)
