package domain

import "errors"

var (
	ErrNotFound           = errors.New("not_found")
	ErrEmailTaken         = errors.New("email_taken")
	ErrAlreadyRegistered  = errors.New("already_registered")
	ErrNoPendingSignup    = errors.New("no_pending_signup")
	ErrOTPExpired         = errors.New("otp_expired")
	ErrInvalidOTP         = errors.New("otp_invalid")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrDeliveryFailed     = errors.New("delivery_failed")
)

// ValidationError carries the message shown to the client for malformed
// input, caught before any state mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
