package resolve

import "errors"

var (
	ErrDone         = errors.New("request ctx done")
	ErrInvalid      = errors.New("invalid")
	ErrMissingData  = errors.New("missing data")
	ErrUnresolvable = errors.New("unresolvable")
)
