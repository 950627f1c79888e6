package transition

import "errors"

var (
	ErrTerminalStatus    = errors.New("request is in a terminal status")
	ErrTransitionInvalid = errors.New("transition not permitted")
	ErrInvalidStatus     = errors.New("unrecognized status")
	ErrNilRequest        = errors.New("request is required")
)
