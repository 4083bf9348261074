package domain

import "time"

type UserType string

const (
	TypeJobSeeker UserType = "jobSeeker"
	TypeRecruiter UserType = "recruiter"
)

func (t UserType) Valid() bool {
	return t == TypeJobSeeker || t == TypeRecruiter
}

type User struct {
	ID             string
	Username       string
	Email          string
	UserType       UserType
	PasswordHash   string
	CurrentRole    *string
	CurrentCompany *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateUserParams struct {
	Username     string
	Email        string
	UserType     UserType
	PasswordHash string
}

type UserRepo interface {
	Create(p CreateUserParams) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByID(id string) (*User, error)
	ExistsByEmail(email string) (bool, error)
	// UpdateCareerProfile overwrites only the non-nil fields.
	UpdateCareerProfile(userID string, currentRole, currentCompany *string) error
}
