package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itssoni10/ELance/internal/modules/careers/domain"
)

type JobRepo struct{ db *pgxpool.Pool }

func NewJobRepo(db *pgxpool.Pool) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) ActiveWithSkills() ([]domain.Job, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
SELECT j.id, j.title, j.company, j.description, j.location,
       j.salary_min, j.salary_max, j.currency, j.post_date, j.active,
       COALESCE(array_agg(js.skill_id::text) FILTER (WHERE js.skill_id IS NOT NULL), '{}')
  FROM jobs j
  LEFT JOIN job_skills js ON js.job_id = j.id
 WHERE j.active
 GROUP BY j.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Description, &j.Location,
			&j.Salary.Min, &j.Salary.Max, &j.Salary.Currency, &j.PostDate, &j.Active,
			&j.RequiredSkillIDs); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepo) Upsert(j domain.Job) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `
INSERT INTO jobs (title, company, description, location, salary_min, salary_max, currency, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (title, company) DO UPDATE SET
  description = EXCLUDED.description,
  location    = EXCLUDED.location,
  salary_min  = EXCLUDED.salary_min,
  salary_max  = EXCLUDED.salary_max,
  currency    = EXCLUDED.currency,
  active      = EXCLUDED.active
RETURNING id`,
		j.Title, j.Company, j.Description, j.Location,
		j.Salary.Min, j.Salary.Max, j.Salary.Currency, j.Active).Scan(&id)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id=$1`, id); err != nil {
		return err
	}
	for _, sid := range j.RequiredSkillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`, id, sid); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
