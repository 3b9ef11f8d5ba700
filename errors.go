package primext

import "github.com/cockroachdb/errors"

var (
	ErrMalformedText = errors.New("malformed text")
	ErrArity         = errors.New("unsupported group arity")
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidConfig = errors.New("invalid config")
)
