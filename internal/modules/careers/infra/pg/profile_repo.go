package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itssoni10/ELance/internal/modules/careers/domain"
)

type ProfileRepo struct{ db *pgxpool.Pool }

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) SkillsOf(userID string) ([]domain.UserSkill, error) {
	rows, err := r.db.Query(context.Background(), `
SELECT us.skill_id, s.name, us.proficiency, us.years_experience
  FROM user_skills us
  JOIN skills s ON s.id = us.skill_id
 WHERE us.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.UserSkill{}
	for rows.Next() {
		var s domain.UserSkill
		if err := rows.Scan(&s.SkillID, &s.SkillName, &s.Proficiency, &s.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) ReplaceSkills(userID string, skills []domain.UserSkill) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id=$1`, userID); err != nil {
		return err
	}
	for _, s := range skills {
		if _, err := tx.Exec(ctx, `
INSERT INTO user_skills (user_id, skill_id, proficiency, years_experience)
VALUES ($1, $2, $3, $4)`, userID, s.SkillID, s.Proficiency, s.YearsExperience); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ProfileRepo) GoalsOf(userID string) (*domain.CareerGoals, error) {
	var g domain.CareerGoals
	err := r.db.QueryRow(context.Background(), `
SELECT user_id, current_position, target_role, target_timeline_months, career_path_id
  FROM career_goals WHERE user_id=$1`, userID).
		Scan(&g.UserID, &g.CurrentRole, &g.TargetRole, &g.TargetTimelineMonths, &g.CareerPathID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *ProfileRepo) SaveGoals(g domain.CareerGoals) error {
	_, err := r.db.Exec(context.Background(), `
INSERT INTO career_goals (user_id, current_position, target_role, target_timeline_months, career_path_id)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
  current_position       = EXCLUDED.current_position,
  target_role            = EXCLUDED.target_role,
  target_timeline_months = EXCLUDED.target_timeline_months,
  career_path_id         = EXCLUDED.career_path_id`,
		g.UserID, g.CurrentRole, g.TargetRole, g.TargetTimelineMonths, g.CareerPathID)
	return err
}

func (r *ProfileRepo) ReplaceExperience(userID string, entries []domain.Experience) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_experience WHERE user_id=$1`, userID); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := tx.Exec(ctx, `
INSERT INTO user_experience (user_id, title, company, duration, description)
VALUES ($1, $2, $3, $4, $5)`, userID, e.Title, e.Company, e.Duration, e.Description); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
