package appstate

import "errors"

var (
	// ErrInvalidStateTransition is returned by SetStarting and SetRunning when
	// called out of order.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAlreadyTerminated is returned once shutdown has begun: no state change
	// or shutdowner registration is accepted after that.
	ErrAlreadyTerminated = errors.New("application is terminating")
)
