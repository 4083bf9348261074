// Command seed loads the starter catalog of skills, job listings and
// career paths. Safe to re-run: every write is an upsert.
package main

import (
	"context"

	"github.com/itssoni10/ELance/internal/db"
	"github.com/itssoni10/ELance/internal/modules/careers/domain"
	careerspg "github.com/itssoni10/ELance/internal/modules/careers/infra/pg"
	"github.com/itssoni10/ELance/internal/platform/config"
	"github.com/itssoni10/ELance/internal/platform/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	dbpool, err := db.Open(context.Background(), cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer dbpool.Close()

	skills := careerspg.NewSkillRepo(dbpool)
	jobs := careerspg.NewJobRepo(dbpool)
	paths := careerspg.NewPathRepo(dbpool)

	for _, s := range seedSkills {
		if err := skills.Upsert(s); err != nil {
			log.Fatal().Err(err).Str("skill", s.Name).Msg("seeding skill")
		}
	}
	log.Info().Int("count", len(seedSkills)).Msg("skills seeded")

	// Job and path rows reference skills by id, so resolve names first.
	all, err := skills.All()
	if err != nil {
		log.Fatal().Err(err).Msg("loading skills")
	}
	idByName := map[string]string{}
	for _, s := range all {
		idByName[s.Name] = s.ID
	}
	ids := func(names ...string) []string {
		out := make([]string, 0, len(names))
		for _, n := range names {
			if id, ok := idByName[n]; ok {
				out = append(out, id)
			}
		}
		return out
	}

	for _, j := range seedJobs(ids) {
		if err := jobs.Upsert(j); err != nil {
			log.Fatal().Err(err).Str("job", j.Title).Msg("seeding job")
		}
	}
	log.Info().Msg("jobs seeded")

	for _, p := range seedPaths(ids) {
		if err := paths.Upsert(p); err != nil {
			log.Fatal().Err(err).Str("path", p.Title).Msg("seeding career path")
		}
	}
	log.Info().Msg("career paths seeded")
}

var seedSkills = []domain.Skill{
	{Name: "JavaScript", Category: "Programming", DemandScore: 85, Trending: true},
	{Name: "Python", Category: "Programming", DemandScore: 90, Trending: true},
	{Name: "React", Category: "Frontend", DemandScore: 80, Trending: true},
	{Name: "Node.js", Category: "Backend", DemandScore: 75, Trending: true},
	{Name: "AWS", Category: "Cloud", DemandScore: 70, Trending: true},
	{Name: "Docker", Category: "DevOps", DemandScore: 65, Trending: true},
	{Name: "Kubernetes", Category: "DevOps", DemandScore: 60, Trending: true},
	{Name: "Machine Learning", Category: "AI/ML", DemandScore: 85, Trending: true},
	{Name: "Data Science", Category: "Analytics", DemandScore: 80, Trending: true},
	{Name: "SQL", Category: "Database", DemandScore: 75, Trending: true},
	{Name: "MongoDB", Category: "Database", DemandScore: 65, Trending: true},
	{Name: "Git", Category: "Version Control", DemandScore: 70, Trending: true},
	{Name: "TypeScript", Category: "Programming", DemandScore: 60, Trending: true},
	{Name: "GraphQL", Category: "API", DemandScore: 55, Trending: true},
	{Name: "REST API", Category: "API", DemandScore: 70, Trending: true},
}

func seedJobs(ids func(...string) []string) []domain.Job {
	return []domain.Job{
		{
			Title:            "Senior Software Engineer",
			Company:          "Tech Corp",
			Description:      "Build scalable web applications",
			Location:         "San Francisco, CA",
			Salary:           domain.SalaryRange{Min: 120000, Max: 180000, Currency: "USD"},
			RequiredSkillIDs: ids("JavaScript", "React", "Node.js"),
			Active:           true,
		},
		{
			Title:            "Data Scientist",
			Company:          "Data Inc",
			Description:      "Analyze data and build ML models",
			Location:         "New York, NY",
			Salary:           domain.SalaryRange{Min: 100000, Max: 150000, Currency: "USD"},
			RequiredSkillIDs: ids("Python", "Machine Learning", "SQL"),
			Active:           true,
		},
		{
			Title:            "DevOps Engineer",
			Company:          "Cloud Solutions",
			Description:      "Manage cloud infrastructure",
			Location:         "Seattle, WA",
			Salary:           domain.SalaryRange{Min: 110000, Max: 160000, Currency: "USD"},
			RequiredSkillIDs: ids("AWS", "Docker", "Kubernetes"),
			Active:           true,
		},
		{
			Title:            "Full Stack Developer",
			Company:          "StartupXYZ",
			Description:      "Develop end-to-end applications",
			Location:         "Austin, TX",
			Salary:           domain.SalaryRange{Min: 80000, Max: 120000, Currency: "USD"},
			RequiredSkillIDs: ids("JavaScript", "Python", "React"),
			Active:           true,
		},
		{
			Title:            "Machine Learning Engineer",
			Company:          "AI Innovations",
			Description:      "Build and deploy ML models",
			Location:         "Boston, MA",
			Salary:           domain.SalaryRange{Min: 130000, Max: 200000, Currency: "USD"},
			RequiredSkillIDs: ids("Python", "Machine Learning", "AWS"),
			Active:           true,
		},
	}
}

func seedPaths(ids func(...string) []string) []domain.CareerPath {
	return []domain.CareerPath{
		{
			Title:       "Software Engineer to Senior Software Engineer",
			Description: "Path from junior to senior software engineer",
			Domain:      "Software Development",
			Steps: []domain.CareerPathStep{
				{
					Role:             "Junior Software Engineer",
					RequiredSkillIDs: ids("JavaScript", "Git"),
					TimelinePosition: 1,
					AverageSalary:    70000,
					Description:      "Learn fundamentals and work on small features",
				},
				{
					Role:             "Software Engineer",
					RequiredSkillIDs: ids("React", "Node.js", "SQL"),
					TimelinePosition: 2,
					AverageSalary:    95000,
					Description:      "Take ownership of features and mentor juniors",
				},
				{
					Role:             "Senior Software Engineer",
					RequiredSkillIDs: ids("TypeScript", "AWS", "Docker"),
					TimelinePosition: 3,
					AverageSalary:    130000,
					Description:      "Lead technical decisions and architecture",
				},
			},
		},
		{
			Title:       "Data Analyst to Data Scientist",
			Description: "Transition from data analysis to data science",
			Domain:      "Data Science",
			Steps: []domain.CareerPathStep{
				{
					Role:             "Data Analyst",
					RequiredSkillIDs: ids("SQL", "Python"),
					TimelinePosition: 1,
					AverageSalary:    65000,
					Description:      "Analyze data and create reports",
				},
				{
					Role:             "Senior Data Analyst",
					RequiredSkillIDs: ids("Data Science", "Machine Learning"),
					TimelinePosition: 2,
					AverageSalary:    85000,
					Description:      "Build predictive models and advanced analytics",
				},
				{
					Role:             "Data Scientist",
					RequiredSkillIDs: ids("Machine Learning", "AWS"),
					TimelinePosition: 3,
					AverageSalary:    120000,
					Description:      "Lead ML projects and research",
				},
			},
		},
	}
}
