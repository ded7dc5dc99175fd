package service

import "errors"

// Client-side lock flow errors.
var (
	ErrChallengeInFlight = errors.New("device challenge already in flight")
	ErrNoPendingPasscode = errors.New("no passcode-creation flow is pending")
)

// Dev-server session backend errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidProof            = errors.New("invalid database unlock proof")
)
