package quiz

import "errors"

var (
	// ErrEmptyData is returned when a session is started without any sentence pairs
	ErrEmptyData = errors.New("quiz data is empty or invalid")

	// ErrOutOfRange is returned when the current pair is requested outside an active session
	ErrOutOfRange = errors.New("no current question: session is not in progress")

	ErrNotInProgress  = errors.New("session is not in progress")
	ErrNotFinished    = errors.New("session is not finished")
	ErrActionDisabled = errors.New("action is not enabled for the current question")

	ErrUnknownToken  = errors.New("token is not part of the current question")
	ErrUnknownZone   = errors.New("unknown drop zone")
	ErrGestureActive = errors.New("another gesture is already in progress")
	ErrNoGesture     = errors.New("no gesture in progress")
)
