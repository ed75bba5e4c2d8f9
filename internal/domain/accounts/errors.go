package accounts

import "errors"

var (
	// ErrNotFound is returned when an account does not exist.
	ErrNotFound = errors.New("account not found")

	// ErrConflict is returned when a username, email or employee number is taken.
	ErrConflict = errors.New("account already exists")

	// ErrInvalidCredentials is returned for any failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidAccessCode is returned when a rotating access code does not verify.
	ErrInvalidAccessCode = errors.New("invalid access code")

	// ErrPasswordAlreadySet is returned when a first-time password set targets an
	// employee who already has one.
	ErrPasswordAlreadySet = errors.New("password already set")

	// ErrForbidden is returned when a principal lacks the role for an operation.
	ErrForbidden = errors.New("forbidden")
)
