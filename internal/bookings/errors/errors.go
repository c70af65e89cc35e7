package errors

import "errors"

var ErrInvalidID = errors.New("invalid booking ID format")
