package types

import (
	"errors"
)

var (
	// ErrInvalidParams is returned when a value is outside the range a
	// constructor or operation accepts, e.g. a residue not in [0, p) or the
	// inverse of zero.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrMismatch is returned when operands are defined over different
	// fields or curves.
	ErrMismatch = errors.New("mismatched field or curve")

	// ErrPointNotOnCurve is returned when a point does not satisfy
	// y^2 = x^3 + ax + b.
	ErrPointNotOnCurve = errors.New("point is not on curve")

	// ErrInvalidEncoding is returned when decoding malformed point bytes.
	ErrInvalidEncoding = errors.New("invalid point encoding")
)
