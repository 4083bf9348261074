package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/modules/auth/service"
)

type verifyOTPReq struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

func VerifyOTPHandler(svc *service.Service, dev bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req verifyOTPReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and OTP are required"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and OTP are required"})
		}

		token, user, err := svc.VerifyOTP(c.Context(), req.Email, req.OTP)
		if err != nil {
			return fail(c, err, "Server error during OTP verification", dev)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User registered successfully",
			"token":   token,
			"user":    toUserResp(user),
		})
	}
}
