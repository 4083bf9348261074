package http

import (
	"errors"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
	"github.com/itssoni10/ELance/internal/modules/auth/service"
)

var validate = validator.New()

type signupReq struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	UserType        string `json:"userType" validate:"required"`
}

func SignupHandler(svc *service.Service, dev bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req signupReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email address"})
		}

		err := svc.Signup(c.Context(), service.SignupInput{
			Username:        req.Username,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			UserType:        req.UserType,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDeliveryFailed) {
				body := fiber.Map{"message": "Error sending OTP"}
				if dev {
					body["error"] = err.Error()
				}
				return c.Status(fiber.StatusInternalServerError).JSON(body)
			}
			return fail(c, err, "Server error during signup", dev)
		}

		return c.JSON(fiber.Map{
			"message": "OTP sent to your email",
			"email":   req.Email,
		})
	}
}
