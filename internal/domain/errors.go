package domain

import "errors"

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when required fields are missing or malformed.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidCredentials is returned on any login failure. The message is
// deliberately generic so callers cannot distinguish unknown email from
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")
