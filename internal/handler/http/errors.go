package http

import "errors"

// Sentinel errors raised while decoding request bodies.
var (
	ErrInvalidJSON  = errors.New("invalid JSON was passed")
	ErrBodyTooLarge = errors.New("request body too large")
)
