package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrProofRejected       = errors.New("database unlock proof rejected")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedVerdict   = errors.New("unexpected verification verdict")
)
