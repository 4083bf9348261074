package pg

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
)

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

const userCols = `id, username, email, user_type, password_hash, current_position, current_company, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.UserType, &u.PasswordHash,
		&u.CurrentRole, &u.CurrentCompany, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(p domain.CreateUserParams) (*domain.User, error) {
	q := `
INSERT INTO users (username, email, user_type, password_hash)
VALUES ($1, LOWER($2), $3, $4)
RETURNING ` + userCols
	row := r.db.QueryRow(context.Background(), q, p.Username, p.Email, p.UserType, p.PasswordHash)
	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(email string) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE email = LOWER($1)`, strings.TrimSpace(email))
	return scanUser(row)
}

func (r *UserRepo) GetByID(id string) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userCols+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = LOWER($1))`, email).Scan(&ok)
	return ok, err
}

func (r *UserRepo) UpdateCareerProfile(userID string, currentRole, currentCompany *string) error {
	q := `UPDATE users SET
	        current_position = COALESCE($2, current_position),
	        current_company  = COALESCE($3, current_company),
	        updated_at       = now()
	      WHERE id = $1`
	_, err := r.db.Exec(context.Background(), q, userID, currentRole, currentCompany)
	return err
}
