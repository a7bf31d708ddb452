package apperror

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrMalformedInput   = errors.New("malformed input")
)
