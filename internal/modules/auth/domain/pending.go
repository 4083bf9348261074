package domain

import "time"

// CapturedProfile is the signup data held until the email is verified. The
// password stays plaintext here; it is hashed once at finalize time.
type CapturedProfile struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	UserType UserType `json:"userType"`
}

// PendingRegistration is an unconfirmed signup. At most one exists per email.
type PendingRegistration struct {
	Email    string          `json:"email"`
	Code     string          `json:"code"`
	Profile  CapturedProfile `json:"profile"`
	IssuedAt time.Time       `json:"issuedAt"`
}

// PendingStore owns pending registrations. Implementations must serialize
// Create/Get/Replace/Delete per email so a resend racing a verify can never
// observe a half-updated record.
type PendingStore interface {
	// Create registers a pending signup, overwriting any existing record
	// for the email. The newest code is the only valid one.
	Create(email, code string, profile CapturedProfile, now time.Time) error
	// Get returns ErrNoPendingSignup when no record exists.
	Get(email string) (*PendingRegistration, error)
	// Replace swaps in a new code and refreshes IssuedAt. Returns
	// ErrNoPendingSignup when no record exists.
	Replace(email, newCode string, now time.Time) error
	// Delete is idempotent; deleting an absent record is not an error.
	Delete(email string) error
}
