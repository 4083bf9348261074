package domain

import "time"

type CareerPathStep struct {
	Role             string
	RequiredSkillIDs []string
	TimelinePosition int
	AverageSalary    int
	Description      string
}

// CareerPath is an ordered progression of roles; the last step is the
// target role for gap analysis.
type CareerPath struct {
	ID          string
	Title       string
	Description string
	Domain      string
	Steps       []CareerPathStep
	CreatedAt   time.Time
}

// CareerGoals is a user's stated trajectory.
type CareerGoals struct {
	UserID               string
	CurrentRole          string
	TargetRole           string
	TargetTimelineMonths int
	CareerPathID         *string
}

// Experience is one resume entry on a user's profile.
type Experience struct {
	Title       string
	Company     string
	Duration    string
	Description string
}

type PathRepo interface {
	// FindByRoles returns paths whose steps include both roles.
	FindByRoles(currentRole, targetRole string) ([]CareerPath, error)
	GetByID(id string) (*CareerPath, error)
	Upsert(p CareerPath) error
}

// ProfileRepo owns the career-related parts of a user's profile.
type ProfileRepo interface {
	SkillsOf(userID string) ([]UserSkill, error)
	ReplaceSkills(userID string, skills []UserSkill) error
	GoalsOf(userID string) (*CareerGoals, error)
	SaveGoals(g CareerGoals) error
	ReplaceExperience(userID string, entries []Experience) error
}
