package service

import (
	"context"
	"encoding/json"
	"fmt"

	careers "github.com/itssoni10/ELance/internal/modules/careers/domain"
)

type ResumeExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type ResumeAnalysis struct {
	PersonalInfo struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
	} `json:"personalInfo"`
	CurrentRole    string             `json:"currentRole"`
	CurrentCompany string             `json:"currentCompany"`
	Skills         []string           `json:"skills"`
	Experience     []ResumeExperience `json:"experience"`
	Education      []struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Year        string `json:"year"`
	} `json:"education"`
	Summary string `json:"summary"`
}

var resumeFallback = json.RawMessage(`{
  "personalInfo": {"name": "John Doe", "email": "john.doe@email.com", "phone": "(555) 123-4567", "location": "San Francisco, CA"},
  "currentRole": "Software Engineer",
  "currentCompany": "Tech Corp",
  "skills": ["JavaScript", "React", "Node.js", "Python", "MongoDB", "AWS"],
  "experience": [
    {"title": "Software Engineer", "company": "Tech Corp", "duration": "2020-2023", "description": "Developed web applications and led development teams"}
  ],
  "education": [
    {"degree": "Bachelor of Science in Computer Science", "institution": "University of Technology", "year": "2018"}
  ],
  "summary": "Experienced software engineer with expertise in full-stack development"
}`)

// AnalyzeResume runs the extracted resume text through the model and folds
// the result into the user's profile: skills (created on first sight),
// experience entries, current role and company.
func (s *Service) AnalyzeResume(ctx context.Context, userID, resumeText string) (*ResumeAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze the following resume text and extract structured information:

%s

Please provide a JSON response with the following structure:
{
  "personalInfo": {"name": "extracted name", "email": "extracted email", "phone": "extracted phone", "location": "extracted location"},
  "currentRole": "current job title",
  "currentCompany": "current company name",
  "skills": ["skill1", "skill2", "skill3"],
  "experience": [{"title": "job title", "company": "company name", "duration": "duration", "description": "job description"}],
  "education": [{"degree": "degree name", "institution": "institution name", "year": "graduation year"}],
  "summary": "brief professional summary"
}`, resumeText)

	raw, err := s.ai.GenerateJSON(ctx, prompt, resumeFallback)
	if err != nil {
		return nil, err
	}
	var analysis ResumeAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("resume analysis: %w", err)
	}

	if err := s.applyToProfile(userID, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *Service) applyToProfile(userID string, a *ResumeAnalysis) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return err
	}

	skills := make([]careers.UserSkill, 0, len(a.Skills))
	for _, name := range a.Skills {
		sk, err := s.skills.GetOrCreateByName(name)
		if err != nil {
			return err
		}
		skills = append(skills, careers.UserSkill{
			SkillID:         sk.ID,
			SkillName:       sk.Name,
			Proficiency:     "intermediate",
			YearsExperience: 2,
		})
	}
	if err := s.profiles.ReplaceSkills(userID, skills); err != nil {
		return err
	}

	entries := make([]careers.Experience, 0, len(a.Experience))
	for _, e := range a.Experience {
		entries = append(entries, careers.Experience{
			Title:       e.Title,
			Company:     e.Company,
			Duration:    e.Duration,
			Description: e.Description,
		})
	}
	if err := s.profiles.ReplaceExperience(userID, entries); err != nil {
		return err
	}

	var role, company *string
	if a.CurrentRole != "" {
		role = &a.CurrentRole
	}
	if a.CurrentCompany != "" {
		company = &a.CurrentCompany
	}
	if role != nil || company != nil {
		if err := s.users.UpdateCareerProfile(userID, role, company); err != nil {
			return err
		}
	}
	return nil
}
