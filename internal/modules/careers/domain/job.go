package domain

import "time"

type SalaryRange struct {
	Min      int
	Max      int
	Currency string
}

// Job is a listing used as raw material for skill-demand analysis.
type Job struct {
	ID               string
	Title            string
	Company          string
	Description      string
	Location         string
	Salary           SalaryRange
	RequiredSkillIDs []string
	PostDate         time.Time
	Active           bool
}

type JobRepo interface {
	// ActiveWithSkills returns active listings with their skill ids populated.
	ActiveWithSkills() ([]Job, error)
	Upsert(j Job) error
}
