package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
	"github.com/itssoni10/ELance/internal/modules/auth/infra"
)

type fakeMailer struct {
	sent []struct{ email, code string }
	err  error
}

func (m *fakeMailer) SendOTP(_ context.Context, email, code string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, struct{ email, code string }{email, code})
	return nil
}

func (m *fakeMailer) lastCode() string {
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].code
}

type fakeIssuer struct{ issued int }

func (f *fakeIssuer) Issue(userID, userType string) (string, error) {
	f.issued++
	return "token-" + userID + "-" + userType, nil
}

type fixture struct {
	svc    *Service
	users  domain.UserRepo
	store  domain.PendingStore
	mailer *fakeMailer
	issuer *fakeIssuer
	clock  *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:  infra.NewMemUserRepo(),
		store:  infra.NewMemPendingStore(),
		mailer: &fakeMailer{},
		issuer: &fakeIssuer{},
	}
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.clock = &start

	f.svc = New(Deps{
		Users:   f.users,
		Pending: f.store,
		Mailer:  f.mailer,
		Tokens:  f.issuer,
		Logger:  zerolog.Nop(),
	})
	f.svc.now = func() time.Time { return *f.clock }

	codes := []string{"111111", "222222", "333333", "444444"}
	f.svc.generate = func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}
	// Passwords are stored and compared in clear inside the tests; the real
	// argon2id pair is exercised in the security package tests.
	f.svc.hash = func(pw string) (string, error) { return "h:" + pw, nil }
	f.svc.compare = func(hash, pw string) (bool, error) { return hash == "h:"+pw, nil }
	return f
}

func (f *fixture) advance(d time.Duration) { *f.clock = f.clock.Add(d) }

func validSignup() SignupInput {
	return SignupInput{
		Username:        "ananya",
		Email:           "ananya@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
		UserType:        "jobSeeker",
	}
}

func TestSignupSendsCodeAndCapturesProfile(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Signup(context.Background(), validSignup()))
	require.Len(t, f.mailer.sent, 1)
	require.Equal(t, "111111", f.mailer.lastCode())

	p, err := f.store.Get("ananya@example.com")
	require.NoError(t, err)
	require.Equal(t, "ananya", p.Profile.Username)
	require.Equal(t, domain.TypeJobSeeker, p.Profile.UserType)
	require.Equal(t, "secret12", p.Profile.Password)

	// No account exists until the code is verified.
	_, err = f.users.GetByEmail("ananya@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSignupValidation(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name   string
		mutate func(*SignupInput)
		msg    string
	}{
		{"missing field", func(in *SignupInput) { in.Username = "" }, "All fields are required"},
		{"mismatch", func(in *SignupInput) { in.ConfirmPassword = "other1" }, "Passwords do not match"},
		{"short password", func(in *SignupInput) { in.Password = "abc"; in.ConfirmPassword = "abc" }, "Password must be at least 6 characters"},
		{"bad type", func(in *SignupInput) { in.UserType = "admin" }, "User type must be jobSeeker or recruiter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)
			err := f.svc.Signup(context.Background(), in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.msg, verr.Message)
		})
	}
}

func TestSignupRejectsRegisteredEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))
	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.NoError(t, err)

	err = f.svc.Signup(ctx, validSignup())
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestSignupOverwritesPendingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := validSignup()
	require.NoError(t, f.svc.Signup(ctx, in))

	in.Username = "ananya2"
	require.NoError(t, f.svc.Signup(ctx, in))

	// The first code died with the overwrite.
	_, _, err := f.svc.VerifyOTP(ctx, in.Email, "111111")
	require.ErrorIs(t, err, domain.ErrInvalidOTP)

	_, u, err := f.svc.VerifyOTP(ctx, in.Email, "222222")
	require.NoError(t, err)
	require.Equal(t, "ananya2", u.Username)
}

func TestVerifyFinalizesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))

	token, u, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.NoError(t, err)
	require.Equal(t, "token-"+u.ID+"-jobSeeker", token)
	require.Equal(t, "h:secret12", u.PasswordHash)

	// The record was consumed; replaying the same code finds nothing.
	_, _, err = f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.ErrorIs(t, err, domain.ErrNoPendingSignup)
	require.Equal(t, 1, f.issuer.issued)
}

func TestVerifyWrongCodeLeavesRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))

	for i := 0; i < 3; i++ {
		_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "999999")
		require.ErrorIs(t, err, domain.ErrInvalidOTP)
	}

	// Still verifiable with the right code; mismatches are not counted.
	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.NoError(t, err)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))
	f.advance(OTPWindow)

	// Exactly at the window edge the code still works.
	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.NoError(t, err)
}

func TestVerifyExpiredDeletesRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))
	f.advance(OTPWindow + time.Second)

	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.ErrorIs(t, err, domain.ErrOTPExpired)

	// The expired record was purged, so the next attempt reports absence.
	_, _, err = f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.ErrorIs(t, err, domain.ErrNoPendingSignup)
}

func TestVerifyUnknownEmail(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.VerifyOTP(context.Background(), "nobody@example.com", "111111")
	require.ErrorIs(t, err, domain.ErrNoPendingSignup)
}

func TestResendInvalidatesOldCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))
	require.NoError(t, f.svc.ResendOTP(ctx, "ananya@example.com"))
	require.Equal(t, "222222", f.mailer.lastCode())

	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.ErrorIs(t, err, domain.ErrInvalidOTP)

	_, u, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "222222")
	require.NoError(t, err)
	require.Equal(t, "ananya", u.Username)
}

func TestResendResetsExpiryClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))
	f.advance(4 * time.Minute)
	require.NoError(t, f.svc.ResendOTP(ctx, "ananya@example.com"))
	f.advance(4 * time.Minute)

	// Eight minutes after signup, but only four after the resend.
	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "222222")
	require.NoError(t, err)
}

func TestResendWithoutPendingSignup(t *testing.T) {
	f := newFixture(t)
	err := f.svc.ResendOTP(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrNoPendingSignup)
}

func TestSignupDeliveryFailureKeepsRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mailer.err = errors.New("smtp down")
	err := f.svc.Signup(ctx, validSignup())
	require.ErrorIs(t, err, domain.ErrDeliveryFailed)

	// The captured profile survived the failed send; a resend recovers.
	f.mailer.err = nil
	require.NoError(t, f.svc.ResendOTP(ctx, "ananya@example.com"))
	_, _, err2 := f.svc.VerifyOTP(ctx, "ananya@example.com", "222222")
	require.NoError(t, err2)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Signup(ctx, validSignup()))
	_, _, err := f.svc.VerifyOTP(ctx, "ananya@example.com", "111111")
	require.NoError(t, err)

	token, u, err := f.svc.Login(ctx, "Ananya@Example.com", "secret12")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "ananya@example.com", u.Email)

	_, _, err = f.svc.Login(ctx, "ananya@example.com", "wrongpw")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = f.svc.Login(ctx, "ghost@example.com", "secret12")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
