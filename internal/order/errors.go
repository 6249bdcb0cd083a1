package order

import "errors"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownLine  = errors.New("unknown equipment line")
)
