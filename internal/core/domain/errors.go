package domain

import "errors"

// Local validation failures: caught before any network call.
var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrPasswordTooShort    = errors.New("password shorter than 6 characters")
	ErrNameTooShort        = errors.New("name shorter than 2 characters")
	ErrPhoneInvalid        = errors.New("phone does not match an accepted format")
	ErrFieldsMissing       = errors.New("required order fields missing")
)

// ErrNotLoggedIn means an authenticated action was attempted without a
// usable token. Treated like a local validation failure: no request is sent.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrTransport means the request never completed: offline, refused
// connection, DNS failure. The backend was never heard from.
var ErrTransport = errors.New("transport failure")

// RejectionError carries the structured detail of a non-OK backend response.
// Detail is surfaced to the user verbatim; an empty Detail means the body
// had no detail field and the caller should fall back to a generic text.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return "request rejected by backend"
	}
	return e.Detail
}
