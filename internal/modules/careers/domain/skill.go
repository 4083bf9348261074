package domain

import "errors"

var ErrNotFound = errors.New("not_found")

type Skill struct {
	ID          string
	Name        string
	Category    string
	DemandScore int
	Trending    bool
}

// UserSkill ties a skill to a user's profile.
type UserSkill struct {
	SkillID         string
	SkillName       string
	Proficiency     string // beginner | intermediate | advanced | expert
	YearsExperience int
}

type SkillRepo interface {
	Trending(limit int) ([]Skill, error)
	All() ([]Skill, error)
	GetOrCreateByName(name string) (*Skill, error)
	SetDemand(skillID string, score int, trending bool) error
	Upsert(s Skill) error
}
