package rmdp

import "errors"

// Error taxonomy for the data model. Every validation fault returned by
// this package wraps one of these sentinels so callers can use errors.Is,
// while the wrapped message carries the offending indices.
var (
	ErrInvalidIndex      = errors.New("invalid index")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrOutOfRange        = errors.New("value out of range")
	ErrNotNormalized     = errors.New("distribution not normalized")
	ErrEmptyDistribution = errors.New("empty distribution")
	ErrParseError        = errors.New("parse error")
	ErrIOError           = errors.New("io error")
)
