package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/modules/advice/service"
	authdomain "github.com/itssoni10/ELance/internal/modules/auth/domain"
)

// Module exposes the AI advice and resume endpoints, all behind auth.
type Module struct {
	svc  *service.Service
	auth fiber.Handler
}

func NewModule(svc *service.Service, auth fiber.Handler) *Module {
	return &Module{svc: svc, auth: auth}
}

func (m *Module) Register(r fiber.Router) {
	gemini := r.Group("/gemini", m.auth)
	gemini.Post("/career-advice", m.careerAdvice)
	gemini.Post("/skill-recommendations", m.skillRecommendations)
	gemini.Get("/market-trends", m.marketTrends)

	resume := r.Group("/resume", m.auth)
	resume.Post("/upload", m.uploadResume)
}

type adviceReq struct {
	CurrentRole string   `json:"currentRole"`
	TargetRole  string   `json:"targetRole"`
	UserSkills  []string `json:"userSkills"`
}

func (m *Module) careerAdvice(c *fiber.Ctx) error {
	var req adviceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	userID, _ := c.Locals("user_id").(string)

	raw, err := m.svc.CareerAdvice(c.Context(), userID, req.CurrentRole, req.TargetRole, req.UserSkills)
	if err != nil {
		if errors.Is(err, authdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate career advice"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func (m *Module) skillRecommendations(c *fiber.Ctx) error {
	var req adviceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	raw, err := m.svc.SkillRecommendations(c.Context(), req.CurrentRole, req.TargetRole, req.UserSkills)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate skill recommendations"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func (m *Module) marketTrends(c *fiber.Ctx) error {
	raw, err := m.svc.MarketTrends(c.Context(), c.Query("industry"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to analyze job market trends"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
