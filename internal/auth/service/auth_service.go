package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexter-app/nexter-backend/internal/auth/domain"
	"github.com/nexter-app/nexter-backend/internal/auth/repository"
	"github.com/nexter-app/nexter-backend/internal/auth/token"
)

// AuthService implements signup, login and profile operations on top of
// a UserRepo and a token issuer.
type AuthService struct {
	userRepo repository.UserRepo
	tokens   *token.Issuer
}

func NewAuthService(userRepo repository.UserRepo, tokens *token.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup registers an email account. The repository rejects duplicate
// emails with domain.ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, string, error) {
	user := &domain.User{
		Email:  normalizeEmail(req.Email),
		Name:   strings.TrimSpace(req.Name),
		Method: req.Method,
		Goals:  req.Goals,
	}
	if user.Method == "" {
		user.Method = domain.MethodEmail
	}
	if p := strings.TrimSpace(req.Phone); p != "" {
		user.Phone = &p
	}
	if st := strings.TrimSpace(req.Status); st != "" {
		user.Status = &st
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// Login checks the password for an email account. Unknown emails and
// wrong passwords both come back as ErrInvalidCredentials so callers
// cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)
	return user, tok, nil
}

// GoogleLogin creates the account on first sight. An email already
// registered with a different method is a conflict.
func (s *AuthService) GoogleLogin(ctx context.Context, email, name string) (*domain.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		candidate := &domain.User{
			Email:  email,
			Name:   strings.TrimSpace(name),
			Method: domain.MethodGoogle,
		}
		switch createErr := s.userRepo.Create(ctx, candidate); createErr {
		case nil:
			user = candidate
		case domain.ErrEmailTaken:
			// Lost a race with another first login; the winner's
			// record is there now.
			user, err = s.userRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, "", err
			}
		default:
			return nil, "", createErr
		}
	} else if err != nil {
		return nil, "", err
	}

	if user.Method != domain.MethodGoogle {
		return nil, "", domain.ErrMethodMismatch
	}

	tok, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)
	return user, tok, nil
}

// GetProfile returns the stored profile for a user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update and returns the new profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *domain.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Headline != nil {
		user.Headline = req.Headline
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Status != nil {
		user.Status = req.Status
	}
	if req.Goals != nil {
		user.Goals = req.Goals
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new
// hash. Google accounts have no password to change.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Update(ctx, user)
}

// VerifyToken parses a bearer token and returns the subject user id.
func (s *AuthService) VerifyToken(tokenStr string) (string, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
