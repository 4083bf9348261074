package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/modules/auth/service"
)

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func LoginHandler(svc *service.Service, dev bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password are required"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email and password are required"})
		}

		token, user, err := svc.Login(c.Context(), req.Email, req.Password)
		if err != nil {
			return fail(c, err, "Server error during login", dev)
		}

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"token":   token,
			"user":    toUserResp(user),
		})
	}
}
