package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
	"github.com/itssoni10/ELance/internal/modules/auth/service"
)

type resendOTPReq struct {
	Email string `json:"email" validate:"required,email"`
}

func ResendOTPHandler(svc *service.Service, dev bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resendOTPReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
		}

		if err := svc.ResendOTP(c.Context(), req.Email); err != nil {
			// A resend with no prior signup is a distinct client error.
			if errors.Is(err, domain.ErrNoPendingSignup) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No signup request found for this email"})
			}
			if errors.Is(err, domain.ErrDeliveryFailed) {
				body := fiber.Map{"message": "Error sending OTP"}
				if dev {
					body["error"] = err.Error()
				}
				return c.Status(fiber.StatusInternalServerError).JSON(body)
			}
			return fail(c, err, "Server error during OTP resend", dev)
		}

		return c.JSON(fiber.Map{
			"message": "New OTP sent to your email",
			"email":   req.Email,
		})
	}
}
