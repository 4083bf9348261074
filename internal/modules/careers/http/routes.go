package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/modules/careers/domain"
	"github.com/itssoni10/ELance/internal/modules/careers/service"
)

// Module exposes the skills and career-path endpoints. All routes sit
// behind the provided auth middleware.
type Module struct {
	svc  *service.Service
	auth fiber.Handler
}

func NewModule(svc *service.Service, auth fiber.Handler) *Module {
	return &Module{svc: svc, auth: auth}
}

func (m *Module) Register(r fiber.Router) {
	skills := r.Group("/skills", m.auth)
	skills.Get("/trending", m.trendingSkills)
	skills.Post("/analyze-demand", m.analyzeDemand)
	skills.Get("/compare/:userId", m.compareSkills)

	paths := r.Group("/career-paths", m.auth)
	paths.Get("/recommendations", m.recommendations)
	paths.Get("/skill-gaps/:userId/:careerPathId", m.skillGaps)
	paths.Put("/goals/:userId", m.updateGoals)
}

func (m *Module) trendingSkills(c *fiber.Ctx) error {
	skills, err := m.svc.TrendingSkills()
	if err != nil {
		return serverError(c, err)
	}
	out := make([]fiber.Map, 0, len(skills))
	for _, s := range skills {
		out = append(out, fiber.Map{
			"id":          s.ID,
			"name":        s.Name,
			"category":    s.Category,
			"demandScore": s.DemandScore,
			"trending":    s.Trending,
		})
	}
	return c.JSON(out)
}

func (m *Module) analyzeDemand(c *fiber.Ctx) error {
	if err := m.svc.AnalyzeSkillDemand(); err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill demand analysis completed"})
}

func (m *Module) compareSkills(c *fiber.Ctx) error {
	cmp, err := m.svc.CompareUserSkills(c.Params("userId"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(cmp)
}

func (m *Module) recommendations(c *fiber.Ctx) error {
	paths, err := m.svc.PathRecommendations(c.Query("currentRole"), c.Query("targetRole"))
	if err != nil {
		return serverError(c, err)
	}
	out := make([]fiber.Map, 0, len(paths))
	for _, p := range paths {
		steps := make([]fiber.Map, 0, len(p.Steps))
		for _, st := range p.Steps {
			steps = append(steps, fiber.Map{
				"role":             st.Role,
				"requiredSkills":   st.RequiredSkillIDs,
				"timelinePosition": st.TimelinePosition,
				"averageSalary":    st.AverageSalary,
				"description":      st.Description,
			})
		}
		out = append(out, fiber.Map{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"domain":      p.Domain,
			"steps":       steps,
		})
	}
	return c.JSON(out)
}

func (m *Module) skillGaps(c *fiber.Ctx) error {
	report, err := m.svc.SkillGaps(c.Params("userId"), c.Params("careerPathId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Career path not found"})
		}
		return serverError(c, err)
	}
	return c.JSON(report)
}

type goalsReq struct {
	CurrentRole    string  `json:"currentRole"`
	TargetRole     string  `json:"targetRole"`
	TargetTimeline int     `json:"targetTimeline"`
	CareerPathID   *string `json:"careerPathId"`
}

func (m *Module) updateGoals(c *fiber.Ctx) error {
	var req goalsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	goals, err := m.svc.UpdateGoals(domain.CareerGoals{
		UserID:               c.Params("userId"),
		CurrentRole:          req.CurrentRole,
		TargetRole:           req.TargetRole,
		TargetTimelineMonths: req.TargetTimeline,
		CareerPathID:         req.CareerPathID,
	})
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"currentRole":    goals.CurrentRole,
		"targetRole":     goals.TargetRole,
		"targetTimeline": goals.TargetTimelineMonths,
		"careerPath":     goals.CareerPathID,
	})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
