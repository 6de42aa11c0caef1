package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Dosada05/league-standings/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, display_name, email, role, password_hash, created_at
		FROM users
		WHERE lower(email) = $1`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.DisplayName, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
