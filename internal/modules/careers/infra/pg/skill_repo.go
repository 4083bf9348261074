package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itssoni10/ELance/internal/modules/careers/domain"
)

type SkillRepo struct{ db *pgxpool.Pool }

func NewSkillRepo(db *pgxpool.Pool) *SkillRepo { return &SkillRepo{db: db} }

func (r *SkillRepo) Trending(limit int) ([]domain.Skill, error) {
	q, args := trendingQuery(limit)
	rows, err := r.db.Query(context.Background(), q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

// trendingQuery treats a non-positive limit as unbounded, the same contract
// the in-memory repo implements. LIMIT 0 in Postgres would return no rows.
func trendingQuery(limit int) (string, []any) {
	const base = `SELECT id, name, category, demand_score, trending
		   FROM skills WHERE trending ORDER BY demand_score DESC`
	if limit <= 0 {
		return base, nil
	}
	return base + ` LIMIT $1`, []any{limit}
}

func (r *SkillRepo) All() ([]domain.Skill, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, name, category, demand_score, trending FROM skills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSkills(rows)
}

func (r *SkillRepo) GetOrCreateByName(name string) (*domain.Skill, error) {
	var s domain.Skill
	err := r.db.QueryRow(context.Background(), `
INSERT INTO skills (name, category) VALUES ($1, 'General')
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, category, demand_score, trending`, name).
		Scan(&s.ID, &s.Name, &s.Category, &s.DemandScore, &s.Trending)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SkillRepo) SetDemand(skillID string, score int, trending bool) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE skills SET demand_score=$2, trending=$3 WHERE id=$1`, skillID, score, trending)
	return err
}

func (r *SkillRepo) Upsert(s domain.Skill) error {
	_, err := r.db.Exec(context.Background(), `
INSERT INTO skills (name, category, demand_score, trending)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE SET
  category = EXCLUDED.category,
  demand_score = EXCLUDED.demand_score,
  trending = EXCLUDED.trending`,
		s.Name, s.Category, s.DemandScore, s.Trending)
	return err
}

type skillRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSkills(rows skillRows) ([]domain.Skill, error) {
	out := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.DemandScore, &s.Trending); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
