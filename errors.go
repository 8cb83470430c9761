package automata

import "errors"

var (
	// ErrUnknownOperation is returned by Do for an operation name it does not know.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidArguments is returned when an operation gets the wrong number of inputs
	// or a definition cannot be stored as given.
	ErrInvalidArguments = errors.New("invalid arguments")
)
