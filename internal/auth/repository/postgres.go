package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nexter-app/nexter-backend/internal/auth/domain"
)

// PostgresUserRepo persists users in the users table. Duplicate emails
// are rejected by the unique index; code 23505 maps to ErrEmailTaken.
type PostgresUserRepo struct {
	db *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (r *PostgresUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	const q = `
		INSERT INTO users (id, email, name, method, password_hash, phone, status, goals)
		VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, q,
		user.ID,
		user.Email,
		user.Name,
		user.Method,
		nullIfEmpty(user.PasswordHash),
		user.Phone,
		user.Status,
		pq.Array(user.Goals),
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = selectUser + ` WHERE email = lower($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *PostgresUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = selectUser + ` WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *PostgresUserRepo) Update(ctx context.Context, user *domain.User) error {
	const q = `
		UPDATE users
		SET name = $2, headline = $3, avatar_url = $4, phone = $5,
		    status = $6, goals = $7, password_hash = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, q,
		user.ID,
		user.Name,
		user.Headline,
		user.AvatarURL,
		user.Phone,
		user.Status,
		pq.Array(user.Goals),
		nullIfEmpty(user.PasswordHash),
	).Scan(&user.UpdatedAt)

	if err == sql.ErrNoRows {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *PostgresUserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

const selectUser = `
	SELECT id, email, name, method, password_hash, headline, avatar_url,
	       phone, status, goals, created_at, updated_at, last_login_at
	FROM users`

func (r *PostgresUserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var passwordHash, headline, avatarURL, phone, status sql.NullString
	var lastLoginAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Method,
		&passwordHash,
		&headline,
		&avatarURL,
		&phone,
		&status,
		pq.Array(&user.Goals),
		&user.CreatedAt,
		&user.UpdatedAt,
		&lastLoginAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.PasswordHash = passwordHash.String
	if headline.Valid {
		user.Headline = &headline.String
	}
	if avatarURL.Valid {
		user.AvatarURL = &avatarURL.String
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	if status.Valid {
		user.Status = &status.String
	}
	if lastLoginAt.Valid {
		user.LastLoginAt = &lastLoginAt.Time
	}

	return &user, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
