package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	authdomain "github.com/itssoni10/ELance/internal/modules/auth/domain"
	careers "github.com/itssoni10/ELance/internal/modules/careers/domain"
)

// Generator is the text-generation collaborator. The fallback is returned
// only when the model's answer fails structured parsing; transport failures
// come back as errors.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, fallback json.RawMessage) (json.RawMessage, error)
}

type Deps struct {
	AI       Generator
	Skills   careers.SkillRepo
	Profiles careers.ProfileRepo
	Users    authdomain.UserRepo
}

type Service struct {
	ai       Generator
	skills   careers.SkillRepo
	profiles careers.ProfileRepo
	users    authdomain.UserRepo
}

func New(d Deps) *Service {
	return &Service{ai: d.AI, skills: d.Skills, profiles: d.Profiles, users: d.Users}
}

var skillRecommendationsFallback = json.RawMessage(`{
  "recommendedSkills": [
    {
      "skill": "Communication",
      "priority": "high",
      "resources": ["LinkedIn Learning", "Toastmasters"],
      "timeline": "3 months"
    }
  ],
  "transitionPath": "Focus on developing communication and leadership skills"
}`)

func (s *Service) SkillRecommendations(ctx context.Context, currentRole, targetRole string, userSkills []string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Based on the following information, provide skill recommendations:
- Current Role: %s
- Target Role: %s
- Current Skills: %s

Please provide:
1. Top 5 skills needed to transition from %s to %s
2. Learning resources or certifications for each skill
3. Estimated timeline for skill development

Format the response as JSON with the following structure:
{
  "recommendedSkills": [
    {"skill": "skill name", "priority": "high/medium/low", "resources": ["resource1"], "timeline": "X months"}
  ],
  "transitionPath": "brief description of the transition path"
}`,
		currentRole, targetRole, strings.Join(userSkills, ", "), currentRole, targetRole)
	return s.ai.GenerateJSON(ctx, prompt, skillRecommendationsFallback)
}

var marketTrendsFallback = json.RawMessage(`{
  "trendingSkills": ["JavaScript", "Python", "React", "Node.js", "AWS"],
  "salaryTrends": "Growing demand for tech skills",
  "jobGrowth": "Positive growth in tech sector",
  "emergingRoles": ["AI Engineer", "DevOps Engineer"]
}`)

func (s *Service) MarketTrends(ctx context.Context, industry string) (json.RawMessage, error) {
	if industry == "" {
		industry = "Technology"
	}
	prompt := fmt.Sprintf(`Analyze the current job market trends for %s industry.
Provide insights on:
1. Top 5 in-demand skills
2. Salary trends
3. Job growth projections
4. Emerging roles

Format as JSON with structure:
{
  "trendingSkills": ["skill1", "skill2", "skill3", "skill4", "skill5"],
  "salaryTrends": "description",
  "jobGrowth": "description",
  "emergingRoles": ["role1", "role2"]
}`, industry)
	return s.ai.GenerateJSON(ctx, prompt, marketTrendsFallback)
}

var careerAdviceFallback = json.RawMessage(`{
  "roadmap": "Focus on skill development and networking",
  "skillPriorities": ["Technical Skills", "Soft Skills", "Industry Knowledge"],
  "networkingTips": ["Attend industry events", "Connect on LinkedIn"],
  "industryInsights": "Stay updated with industry trends"
}`)

// CareerAdvice builds a personalized prompt from the stored profile,
// falling back to the request values for anything not on file.
func (s *Service) CareerAdvice(ctx context.Context, userID, currentRole, targetRole string, userSkills []string) (json.RawMessage, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	role := currentRole
	timeline := 12
	if goals, err := s.profiles.GoalsOf(userID); err == nil {
		if goals.CurrentRole != "" {
			role = goals.CurrentRole
		}
		if goals.TargetTimelineMonths > 0 {
			timeline = goals.TargetTimelineMonths
		}
	}
	skills := userSkills
	if len(skills) == 0 {
		if profileSkills, err := s.profiles.SkillsOf(userID); err == nil {
			for _, ps := range profileSkills {
				skills = append(skills, ps.SkillName)
			}
		}
	}

	prompt := fmt.Sprintf(`Based on this user profile and career goals, provide personalized career advice:

User Profile:
- Current Role: %s
- Skills: %s

Career Goals:
- Target Role: %s
- Timeline: %d months

Provide:
1. Personalized career roadmap
2. Skill development priorities
3. Networking recommendations
4. Industry insights

Format as JSON:
{
  "roadmap": "step-by-step career roadmap",
  "skillPriorities": ["priority1", "priority2", "priority3"],
  "networkingTips": ["tip1", "tip2"],
  "industryInsights": "relevant industry insights"
}`,
		orDefault(role), orDefault(strings.Join(skills, ", ")), orDefault(targetRole), timeline)
	return s.ai.GenerateJSON(ctx, prompt, careerAdviceFallback)
}

func orDefault(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
