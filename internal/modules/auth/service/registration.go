package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
	"github.com/itssoni10/ELance/internal/platform/security"
)

// OTPWindow is how long a code stays valid after issuance. Expiry is
// evaluated lazily at verification time; no background sweep runs.
const OTPWindow = 5 * time.Minute

// deliverTimeout bounds a single mail delivery; a timeout is a delivery
// failure, not a success.
const deliverTimeout = 10 * time.Second

// Notifier delivers a one-time code. Implementations do not retry.
type Notifier interface {
	SendOTP(ctx context.Context, email, code string) error
}

// TokenIssuer signs a session credential for a finalized account.
type TokenIssuer interface {
	Issue(userID, userType string) (string, error)
}

type Deps struct {
	Users   domain.UserRepo
	Pending domain.PendingStore
	Mailer  Notifier
	Tokens  TokenIssuer
	Logger  zerolog.Logger
}

// Service orchestrates signup, code verification, resend and login.
type Service struct {
	users   domain.UserRepo
	pending domain.PendingStore
	mailer  Notifier
	tokens  TokenIssuer
	log     zerolog.Logger

	// test seams; production uses the defaults
	now      func() time.Time
	generate func() (string, error)
	hash     func(pw string) (string, error)
	compare  func(hash, pw string) (bool, error)
}

func New(d Deps) *Service {
	return &Service{
		users:    d.Users,
		pending:  d.Pending,
		mailer:   d.Mailer,
		tokens:   d.Tokens,
		log:      d.Logger,
		now:      time.Now,
		generate: func() (string, error) { return security.RandomDigits(6) },
		hash:     security.HashPassword,
		compare:  security.CheckPassword,
	}
}

type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	UserType        string
}

// Signup validates the request, captures the profile as a pending
// registration and mails a fresh 6-digit code. A repeat signup overwrites
// any pending record for the email: the newest code is the only valid one.
func (s *Service) Signup(ctx context.Context, in SignupInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" || in.UserType == "" {
		return &domain.ValidationError{Message: "All fields are required"}
	}
	if in.Password != in.ConfirmPassword {
		return &domain.ValidationError{Message: "Passwords do not match"}
	}
	if len(in.Password) < 6 {
		return &domain.ValidationError{Message: "Password must be at least 6 characters"}
	}
	ut := domain.UserType(in.UserType)
	if !ut.Valid() {
		return &domain.ValidationError{Message: "User type must be jobSeeker or recruiter"}
	}

	exists, err := s.users.ExistsByEmail(in.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}

	code, err := s.generate()
	if err != nil {
		return err
	}
	profile := domain.CapturedProfile{
		Username: in.Username,
		Password: in.Password,
		UserType: ut,
	}
	if err := s.pending.Create(in.Email, code, profile, s.now()); err != nil {
		return err
	}

	// The record stays even when delivery fails; the caller can resend.
	if err := s.deliver(ctx, in.Email, code); err != nil {
		return err
	}
	s.log.Info().Str("email", in.Email).Msg("signup code sent")
	return nil
}

// VerifyOTP checks the submitted code against the pending registration and,
// on a match, finalizes the account exactly once: create the user, consume
// the record, issue a session token.
func (s *Service) VerifyOTP(ctx context.Context, email, otp string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	p, err := s.pending.Get(email)
	if err != nil {
		return "", nil, err
	}

	if s.now().Sub(p.IssuedAt) > OTPWindow {
		// Lazy purge: an expired record is deleted the moment someone
		// tries to use it.
		if derr := s.pending.Delete(email); derr != nil {
			s.log.Error().Err(derr).Str("email", email).Msg("delete expired signup")
		}
		return "", nil, domain.ErrOTPExpired
	}

	// Exact string match, no normalization. A mismatch leaves the record
	// intact; there is no attempt counter.
	if p.Code != otp {
		return "", nil, domain.ErrInvalidOTP
	}

	hash, err := s.hash(p.Profile.Password)
	if err != nil {
		return "", nil, err
	}
	u, err := s.users.Create(domain.CreateUserParams{
		Username:     p.Profile.Username,
		Email:        email,
		UserType:     p.Profile.UserType,
		PasswordHash: hash,
	})
	if err != nil {
		return "", nil, fmt.Errorf("finalize account: %w", err)
	}
	if err := s.pending.Delete(email); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("delete consumed signup")
	}

	token, err := s.tokens.Issue(u.ID, string(u.UserType))
	if err != nil {
		return "", nil, err
	}
	s.log.Info().Str("email", email).Str("user_id", u.ID).Msg("account finalized")
	return token, u, nil
}

// ResendOTP replaces the pending code without discarding the captured
// profile, resetting the expiry clock. The previous code stops working.
func (s *Service) ResendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return &domain.ValidationError{Message: "Email is required"}
	}

	code, err := s.generate()
	if err != nil {
		return err
	}
	if err := s.pending.Replace(email, code, s.now()); err != nil {
		return err
	}
	if err := s.deliver(ctx, email, code); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("signup code resent")
	return nil
}

// Login is independent of the signup machine; it only shares the token
// issuer.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, &domain.ValidationError{Message: "Email and password are required"}
	}

	u, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	ok, err := s.compare(u.PasswordHash, password)
	if err != nil || !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, string(u.UserType))
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) deliver(ctx context.Context, email, code string) error {
	ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()
	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("otp delivery failed")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	return nil
}
