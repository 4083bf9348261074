package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
	"github.com/itssoni10/ELance/internal/modules/auth/infra"
	"github.com/itssoni10/ELance/internal/modules/auth/service"
)

type stubMailer struct{ err error }

func (m *stubMailer) SendOTP(context.Context, string, string) error { return m.err }

type stubIssuer struct{}

func (stubIssuer) Issue(userID, userType string) (string, error) {
	return "tok-" + userID, nil
}

type testEnv struct {
	app    *fiber.App
	store  domain.PendingStore
	mailer *stubMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		app:    fiber.New(),
		store:  infra.NewMemPendingStore(),
		mailer: &stubMailer{},
	}
	svc := service.New(service.Deps{
		Users:   infra.NewMemUserRepo(),
		Pending: env.store,
		Mailer:  env.mailer,
		Tokens:  stubIssuer{},
		Logger:  zerolog.Nop(),
	})
	api := env.app.Group("/api")
	NewModule(svc, false).Register(api)
	return env
}

func (e *testEnv) post(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth"+path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// pendingCode reads the live code straight out of the store; tests have no
// inbox to check.
func (e *testEnv) pendingCode(t *testing.T, email string) string {
	t.Helper()
	p, err := e.store.Get(email)
	require.NoError(t, err)
	return p.Code
}

func signupBody() map[string]any {
	return map[string]any{
		"username":        "meera",
		"email":           "meera@example.com",
		"password":        "secret12",
		"confirmPassword": "secret12",
		"userType":        "recruiter",
	}
}

func TestSignupEndpoint(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.post(t, "/signup", signupBody())
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "OTP sent to your email", body["message"])
	require.Equal(t, "meera@example.com", body["email"])
}

func TestSignupEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	incomplete := signupBody()
	delete(incomplete, "password")
	status, body := env.post(t, "/signup", incomplete)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "All fields are required", body["message"])

	bad := signupBody()
	bad["email"] = "not-an-email"
	status, body = env.post(t, "/signup", bad)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "All fields are required", body["message"])

	mismatch := signupBody()
	mismatch["confirmPassword"] = "different1"
	status, body = env.post(t, "/signup", mismatch)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Passwords do not match", body["message"])
}

func TestSignupEndpointDeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.err = errors.New("smtp down")

	status, body := env.post(t, "/signup", signupBody())
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "Error sending OTP", body["message"])
	// Outside development the body carries no error detail.
	require.NotContains(t, body, "error")
}

func TestVerifyOTPEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/signup", signupBody())
	code := env.pendingCode(t, "meera@example.com")

	status, body := env.post(t, "/verify-otp", map[string]any{
		"email": "meera@example.com", "otp": code,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "User registered successfully", body["message"])
	require.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	require.Equal(t, "meera", user["username"])
	require.Equal(t, "meera@example.com", user["email"])
	require.Equal(t, "recruiter", user["userType"])
}

func TestVerifyOTPEndpointErrors(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/signup", signupBody())

	status, body := env.post(t, "/verify-otp", map[string]any{
		"email": "meera@example.com", "otp": "000000",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid OTP", body["message"])

	status, body = env.post(t, "/verify-otp", map[string]any{
		"email": "ghost@example.com", "otp": "123456",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "OTP not found for this email", body["message"])

	status, body = env.post(t, "/verify-otp", map[string]any{"email": "meera@example.com"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Email and OTP are required", body["message"])
}

func TestVerifyOTPEndpointComparesCodeVerbatim(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/signup", signupBody())
	code := env.pendingCode(t, "meera@example.com")

	// Whitespace is not stripped; a padded code is simply a wrong code.
	status, body := env.post(t, "/verify-otp", map[string]any{
		"email": "meera@example.com", "otp": " " + code,
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid OTP", body["message"])

	status, _ = env.post(t, "/verify-otp", map[string]any{
		"email": "meera@example.com", "otp": code + "\n",
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, body = env.post(t, "/verify-otp", map[string]any{
		"email": "meera@example.com", "otp": code,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "User registered successfully", body["message"])
}

func TestResendOTPEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/signup", signupBody())
	oldCode := env.pendingCode(t, "meera@example.com")

	status, body := env.post(t, "/resend-otp", map[string]any{"email": "meera@example.com"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "New OTP sent to your email", body["message"])

	newCode := env.pendingCode(t, "meera@example.com")
	require.NotEqual(t, oldCode, newCode)

	status, body = env.post(t, "/verify-otp", map[string]any{
		"email": "meera@example.com", "otp": newCode,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "User registered successfully", body["message"])
}

func TestResendOTPEndpointNoPending(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.post(t, "/resend-otp", map[string]any{"email": "ghost@example.com"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "No signup request found for this email", body["message"])
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.post(t, "/signup", signupBody())
	code := env.pendingCode(t, "meera@example.com")
	env.post(t, "/verify-otp", map[string]any{"email": "meera@example.com", "otp": code})

	status, body := env.post(t, "/login", map[string]any{
		"email": "meera@example.com", "password": "secret12",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Login successful", body["message"])
	require.NotEmpty(t, body["token"])

	status, body = env.post(t, "/login", map[string]any{
		"email": "meera@example.com", "password": "wrongpw",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid credentials", body["message"])
}
