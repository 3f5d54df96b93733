package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexter-app/nexter-backend/internal/auth/domain"
)

func TestPostgresUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), "Mina@Example.com", "김민아", domain.MethodEmail,
			sqlmock.AnyArg(), nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	user := &domain.User{
		Email:        "Mina@Example.com",
		Name:         "김민아",
		Method:       domain.MethodEmail,
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})

	err = repo.Create(context.Background(), &domain.User{
		Email:  "mina@example.com",
		Name:   "김민아",
		Method: domain.MethodEmail,
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepo_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "email", "name", "method", "password_hash", "headline", "avatar_url",
		"phone", "status", "goals", "created_at", "updated_at", "last_login_at",
	}).AddRow(
		"user-1", "mina@example.com", "김민아", domain.MethodEmail, "$2a$10$hash",
		nil, nil, nil, "취업 준비 중", "{이직,포트폴리오}", now, now, nil,
	)

	mock.ExpectQuery(`SELECT id, email, name, method`).
		WithArgs("mina@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "mina@example.com")
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.Nil(t, user.Headline)
	require.NotNil(t, user.Status)
	assert.Equal(t, "취업 준비 중", *user.Status)
	assert.Equal(t, []string{"이직", "포트폴리오"}, user.Goals)
	assert.Nil(t, user.LastLoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepo_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(`SELECT id, email, name, method`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
