package authgateway

import "fmt"

type ErrorKind string

const (
	KindAlreadyExists      ErrorKind = "already_exists"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindEmailUnverified    ErrorKind = "email_unverified"
	KindWeakPassword       ErrorKind = "weak_password"
	KindNotFound           ErrorKind = "not_found"
	KindTokenInvalid       ErrorKind = "token_invalid"
	KindUnavailable        ErrorKind = "unavailable"
	KindRejected           ErrorKind = "rejected"
)

// Error classifies a gateway failure so callers can map it to the right
// client-facing message without string-matching response bodies themselves.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth gateway: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth gateway: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
