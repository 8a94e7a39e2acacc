package edgediff

import "errors"

// ErrInvalidInput is returned, wrapped with details, when an operation's
// preconditions aren't met. Use [errors.Is] to test for it.
var ErrInvalidInput = errors.New("invalid input")
