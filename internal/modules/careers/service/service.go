package service

import (
	"github.com/itssoni10/ELance/internal/modules/careers/domain"
)

const (
	trendingLimit = 10
	// A skill counts as trending once it appears in more than this many
	// active listings.
	trendingThreshold = 5
)

type Deps struct {
	Skills   domain.SkillRepo
	Jobs     domain.JobRepo
	Paths    domain.PathRepo
	Profiles domain.ProfileRepo
}

type Service struct {
	skills   domain.SkillRepo
	jobs     domain.JobRepo
	paths    domain.PathRepo
	profiles domain.ProfileRepo
}

func New(d Deps) *Service {
	return &Service{skills: d.Skills, jobs: d.Jobs, paths: d.Paths, profiles: d.Profiles}
}

func (s *Service) TrendingSkills() ([]domain.Skill, error) {
	return s.skills.Trending(trendingLimit)
}

// AnalyzeSkillDemand recomputes demand scores from how often each skill
// appears across active job listings.
func (s *Service) AnalyzeSkillDemand() error {
	jobs, err := s.jobs.ActiveWithSkills()
	if err != nil {
		return err
	}
	freq := map[string]int{}
	for _, j := range jobs {
		for _, sid := range j.RequiredSkillIDs {
			freq[sid]++
		}
	}
	for sid, n := range freq {
		if err := s.skills.SetDemand(sid, n, n > trendingThreshold); err != nil {
			return err
		}
	}
	return nil
}

type SkillComparison struct {
	MatchPercentage float64  `json:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills"`
	SkillsToLearn   []string `json:"skillsToLearn"`
}

// CompareUserSkills measures a user's profile against the trending set.
func (s *Service) CompareUserSkills(userID string) (*SkillComparison, error) {
	userSkills, err := s.profiles.SkillsOf(userID)
	if err != nil {
		return nil, err
	}
	trending, err := s.skills.Trending(0)
	if err != nil {
		return nil, err
	}

	have := map[string]bool{}
	for _, us := range userSkills {
		have[us.SkillName] = true
	}

	cmp := &SkillComparison{MatchingSkills: []string{}, SkillsToLearn: []string{}}
	for _, t := range trending {
		if have[t.Name] {
			cmp.MatchingSkills = append(cmp.MatchingSkills, t.Name)
		} else {
			cmp.SkillsToLearn = append(cmp.SkillsToLearn, t.Name)
		}
	}
	if len(trending) > 0 {
		cmp.MatchPercentage = float64(len(cmp.MatchingSkills)) / float64(len(trending)) * 100
	}
	return cmp, nil
}

func (s *Service) PathRecommendations(currentRole, targetRole string) ([]domain.CareerPath, error) {
	return s.paths.FindByRoles(currentRole, targetRole)
}

type SkillGapReport struct {
	CurrentSkills  []string `json:"currentSkills"`
	RequiredSkills []string `json:"requiredSkills"`
	SkillGaps      []string `json:"skillGaps"`
	GapPercentage  float64  `json:"gapPercentage"`
}

// SkillGaps compares the user's skills against the final step of a career
// path, the target role.
func (s *Service) SkillGaps(userID, pathID string) (*SkillGapReport, error) {
	userSkills, err := s.profiles.SkillsOf(userID)
	if err != nil {
		return nil, err
	}
	path, err := s.paths.GetByID(pathID)
	if err != nil {
		return nil, err
	}
	if len(path.Steps) == 0 {
		return nil, domain.ErrNotFound
	}

	all, err := s.skills.All()
	if err != nil {
		return nil, err
	}
	nameByID := map[string]string{}
	for _, sk := range all {
		nameByID[sk.ID] = sk.Name
	}

	report := &SkillGapReport{CurrentSkills: []string{}, RequiredSkills: []string{}, SkillGaps: []string{}}
	have := map[string]bool{}
	for _, us := range userSkills {
		have[us.SkillName] = true
		report.CurrentSkills = append(report.CurrentSkills, us.SkillName)
	}

	target := path.Steps[len(path.Steps)-1]
	for _, sid := range target.RequiredSkillIDs {
		name := nameByID[sid]
		if name == "" {
			continue
		}
		report.RequiredSkills = append(report.RequiredSkills, name)
		if !have[name] {
			report.SkillGaps = append(report.SkillGaps, name)
		}
	}
	if len(report.RequiredSkills) > 0 {
		report.GapPercentage = float64(len(report.SkillGaps)) / float64(len(report.RequiredSkills)) * 100
	}
	return report, nil
}

func (s *Service) UpdateGoals(g domain.CareerGoals) (*domain.CareerGoals, error) {
	if err := s.profiles.SaveGoals(g); err != nil {
		return nil, err
	}
	return s.profiles.GoalsOf(g.UserID)
}
