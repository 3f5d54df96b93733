package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexter-app/nexter-backend/internal/auth/domain"
	"github.com/nexter-app/nexter-backend/internal/auth/repository"
	"github.com/nexter-app/nexter-backend/internal/auth/token"
)

func newTestService() *AuthService {
	return NewAuthService(repository.NewMemoryUserRepo(), token.NewIssuer("test-secret", time.Hour))
}

func TestSignup_IssuesToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, tok, err := svc.Signup(ctx, &domain.CreateUserRequest{
		Email:    "Mina@Example.com",
		Name:     "김민아",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "mina@example.com", user.Email)
	assert.Equal(t, domain.MethodEmail, user.Method)

	uid, err := svc.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "mina@example.com", Name: "김민아", Password: "secret123"})
	require.NoError(t, err)

	_, tok, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "MINA@example.com", Name: "다른사람", Password: "other456"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Empty(t, tok)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "mina@example.com", Name: "김민아", Password: "secret123"})
	require.NoError(t, err)

	_, tok, err := svc.Login(ctx, "mina@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Empty(t, tok)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "mina@example.com", Name: "김민아", Password: "secret123"})
	require.NoError(t, err)

	user, tok, err := svc.Login(ctx, "Mina@Example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, created.ID, user.ID)
}

func TestGoogleLogin_CreatesOnFirstSight(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, tok, err := svc.GoogleLogin(ctx, "mina@gmail.com", "김민아")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, domain.MethodGoogle, user.Method)

	again, _, err := svc.GoogleLogin(ctx, "mina@gmail.com", "김민아")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

// raceUserRepo loses its first create to a concurrent first login for
// the same email.
type raceUserRepo struct {
	*repository.MemoryUserRepo
	raced bool
}

func (r *raceUserRepo) Create(ctx context.Context, user *domain.User) error {
	if !r.raced {
		r.raced = true
		winner := &domain.User{Email: user.Email, Name: "먼저 온 사용자", Method: domain.MethodGoogle}
		if err := r.MemoryUserRepo.Create(ctx, winner); err != nil {
			return err
		}
		return domain.ErrEmailTaken
	}
	return r.MemoryUserRepo.Create(ctx, user)
}

func TestGoogleLogin_LostRaceUsesWinnersAccount(t *testing.T) {
	repo := &raceUserRepo{MemoryUserRepo: repository.NewMemoryUserRepo()}
	svc := NewAuthService(repo, token.NewIssuer("test-secret", time.Hour))

	user, tok, err := svc.GoogleLogin(context.Background(), "mina@gmail.com", "김민아")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	assert.True(t, repo.raced)
	assert.Equal(t, "먼저 온 사용자", user.Name)
	assert.Equal(t, domain.MethodGoogle, user.Method)
}

func TestGoogleLogin_MethodMismatch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "mina@example.com", Name: "김민아", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.GoogleLogin(ctx, "mina@example.com", "김민아")
	assert.ErrorIs(t, err, domain.ErrMethodMismatch)
}

func TestUpdateProfile_Partial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, _, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "mina@example.com", Name: "김민아", Password: "secret123"})
	require.NoError(t, err)

	headline := "주니어 백엔드 개발자"
	updated, err := svc.UpdateProfile(ctx, user.ID, &domain.UpdateUserRequest{Headline: &headline})
	require.NoError(t, err)

	assert.Equal(t, "김민아", updated.Name)
	require.NotNil(t, updated.Headline)
	assert.Equal(t, headline, *updated.Headline)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, _, err := svc.Signup(ctx, &domain.CreateUserRequest{Email: "mina@example.com", Name: "김민아", Password: "secret123"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "newpass456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, user.ID, "secret123", "newpass456")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "mina@example.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, tok, err := svc.Login(ctx, "mina@example.com", "newpass456")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}
