package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itssoni10/ELance/internal/modules/careers/domain"
)

type PathRepo struct{ db *pgxpool.Pool }

func NewPathRepo(db *pgxpool.Pool) *PathRepo { return &PathRepo{db: db} }

func (r *PathRepo) FindByRoles(currentRole, targetRole string) ([]domain.CareerPath, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
SELECT p.id FROM career_paths p
 WHERE EXISTS (SELECT 1 FROM career_path_steps s WHERE s.path_id = p.id AND s.role = $1)
   AND EXISTS (SELECT 1 FROM career_path_steps s WHERE s.path_id = p.id AND s.role = $2)`,
		currentRole, targetRole)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := []domain.CareerPath{}
	for _, id := range ids {
		p, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *PathRepo) GetByID(id string) (*domain.CareerPath, error) {
	ctx := context.Background()
	var p domain.CareerPath
	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, domain, created_at FROM career_paths WHERE id=$1`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Domain, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
SELECT s.role, s.timeline_position, s.average_salary, s.description,
       COALESCE(array_agg(ss.skill_id::text) FILTER (WHERE ss.skill_id IS NOT NULL), '{}')
  FROM career_path_steps s
  LEFT JOIN career_path_step_skills ss ON ss.step_id = s.id
 WHERE s.path_id = $1
 GROUP BY s.id
 ORDER BY s.timeline_position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.CareerPathStep
		if err := rows.Scan(&st.Role, &st.TimelinePosition, &st.AverageSalary,
			&st.Description, &st.RequiredSkillIDs); err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, st)
	}
	return &p, rows.Err()
}

func (r *PathRepo) Upsert(p domain.CareerPath) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `
INSERT INTO career_paths (title, description, domain)
VALUES ($1, $2, $3)
ON CONFLICT (title) DO UPDATE SET
  description = EXCLUDED.description,
  domain      = EXCLUDED.domain
RETURNING id`, p.Title, p.Description, p.Domain).Scan(&id)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM career_path_steps WHERE path_id=$1`, id); err != nil {
		return err
	}
	for _, st := range p.Steps {
		var stepID string
		err := tx.QueryRow(ctx, `
INSERT INTO career_path_steps (path_id, role, timeline_position, average_salary, description)
VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			id, st.Role, st.TimelinePosition, st.AverageSalary, st.Description).Scan(&stepID)
		if err != nil {
			return err
		}
		for _, sid := range st.RequiredSkillIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO career_path_step_skills (step_id, skill_id) VALUES ($1, $2)`,
				stepID, sid); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}
