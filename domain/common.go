package domain

import (
	"errors"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Error kinds. Every specific error below wraps exactly one of them so handlers
// can pick a status code with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func NewValidationError(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

func NewNotFoundError(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

func NewUnauthorizedError(msg string) error {
	return &kindError{kind: ErrUnauthorized, msg: msg}
}

func NewConflictError(msg string) error {
	return &kindError{kind: ErrConflict, msg: msg}
}

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedInvalidID      = "invalid id parameter"
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrInvalidID      = NewValidationError("id must be a positive integer")
	ErrUserNotAllowed = &kindError{kind: ErrForbidden, msg: "user not allowed"}
	ErrTokenNotFound  = NewUnauthorizedError("failed to token not found")
	ErrTokenInvalid   = NewUnauthorizedError("token invalid")
	ErrTokenExpired   = NewUnauthorizedError("token expired")
)
