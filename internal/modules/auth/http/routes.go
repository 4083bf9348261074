package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
	"github.com/itssoni10/ELance/internal/modules/auth/service"
	plathttp "github.com/itssoni10/ELance/internal/platform/http"
)

// Module wires the auth endpoints to the registration workflow.
type Module struct {
	svc *service.Service
	dev bool
}

func NewModule(svc *service.Service, dev bool) *Module {
	return &Module{svc: svc, dev: dev}
}

func (m *Module) Register(r fiber.Router) {
	limiter := plathttp.NewRateLimiter(rate.Limit(10), 20)

	auth := r.Group("/auth", limiter.Limit())
	auth.Post("/signup", SignupHandler(m.svc, m.dev))
	auth.Post("/verify-otp", VerifyOTPHandler(m.svc, m.dev))
	auth.Post("/login", LoginHandler(m.svc, m.dev))
	auth.Post("/resend-otp", ResendOTPHandler(m.svc, m.dev))
}

type userResp struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func toUserResp(u *domain.User) userResp {
	return userResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		UserType: string(u.UserType),
	}
}

// fail maps workflow errors onto the documented client/server responses.
// Server errors never leak detail outside development.
func fail(c *fiber.Ctx, err error, serverMsg string, dev bool) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ve.Message})
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists with this email"})
	case errors.Is(err, domain.ErrNoPendingSignup):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "OTP not found for this email"})
	case errors.Is(err, domain.ErrOTPExpired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "OTP has expired"})
	case errors.Is(err, domain.ErrInvalidOTP):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid OTP"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}
	body := fiber.Map{"message": serverMsg}
	if dev {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
