package infra

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itssoni10/ELance/internal/modules/careers/domain"
)

type memSkillRepo struct {
	mu     sync.RWMutex
	skills map[string]*domain.Skill // id -> skill
	byName map[string]string        // name -> id
}

func NewMemSkillRepo() domain.SkillRepo {
	return &memSkillRepo{
		skills: make(map[string]*domain.Skill),
		byName: make(map[string]string),
	}
}

func (r *memSkillRepo) Trending(limit int) ([]domain.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Skill{}
	for _, s := range r.skills {
		if s.Trending {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DemandScore > out[j].DemandScore })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memSkillRepo) All() ([]domain.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSkillRepo) GetOrCreateByName(name string) (*domain.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byName[name]; ok {
		cp := *r.skills[id]
		return &cp, nil
	}
	s := &domain.Skill{ID: uuid.New().String(), Name: name, Category: "General"}
	r.skills[s.ID] = s
	r.byName[name] = s.ID
	cp := *s
	return &cp, nil
}

func (r *memSkillRepo) SetDemand(skillID string, score int, trending bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.skills[skillID]
	if !ok {
		return domain.ErrNotFound
	}
	s.DemandScore = score
	s.Trending = trending
	return nil
}

func (r *memSkillRepo) Upsert(s domain.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byName[s.Name]; ok {
		s.ID = id
		r.skills[id] = &s
		return nil
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	r.skills[s.ID] = &s
	r.byName[s.Name] = s.ID
	return nil
}

type memJobRepo struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
}

func NewMemJobRepo() domain.JobRepo {
	return &memJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *memJobRepo) ActiveWithSkills() ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Job{}
	for _, j := range r.jobs {
		if j.Active {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *memJobRepo) Upsert(j domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	if j.PostDate.IsZero() {
		j.PostDate = time.Now().UTC()
	}
	r.jobs[j.ID] = &j
	return nil
}

type memPathRepo struct {
	mu    sync.RWMutex
	paths map[string]*domain.CareerPath
}

func NewMemPathRepo() domain.PathRepo {
	return &memPathRepo{paths: make(map[string]*domain.CareerPath)}
}

func (r *memPathRepo) FindByRoles(currentRole, targetRole string) ([]domain.CareerPath, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.CareerPath{}
	for _, p := range r.paths {
		var hasCurrent, hasTarget bool
		for _, st := range p.Steps {
			if st.Role == currentRole {
				hasCurrent = true
			}
			if st.Role == targetRole {
				hasTarget = true
			}
		}
		if hasCurrent && hasTarget {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPathRepo) GetByID(id string) (*domain.CareerPath, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.paths[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPathRepo) Upsert(p domain.CareerPath) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.paths[p.ID] = &p
	return nil
}

type memProfileRepo struct {
	mu         sync.RWMutex
	skills     map[string][]domain.UserSkill
	goals      map[string]*domain.CareerGoals
	experience map[string][]domain.Experience
}

func NewMemProfileRepo() domain.ProfileRepo {
	return &memProfileRepo{
		skills:     make(map[string][]domain.UserSkill),
		goals:      make(map[string]*domain.CareerGoals),
		experience: make(map[string][]domain.Experience),
	}
}

func (r *memProfileRepo) SkillsOf(userID string) ([]domain.UserSkill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.UserSkill{}, r.skills[userID]...), nil
}

func (r *memProfileRepo) ReplaceSkills(userID string, skills []domain.UserSkill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skills[userID] = append([]domain.UserSkill{}, skills...)
	return nil
}

func (r *memProfileRepo) GoalsOf(userID string) (*domain.CareerGoals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.goals[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *memProfileRepo) SaveGoals(g domain.CareerGoals) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := g
	r.goals[g.UserID] = &cp
	return nil
}

func (r *memProfileRepo) ReplaceExperience(userID string, entries []domain.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.experience[userID] = append([]domain.Experience{}, entries...)
	return nil
}
