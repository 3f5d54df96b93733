package http

import (
	"github.com/nexter-app/nexter-backend/internal/auth/google"
	"github.com/nexter-app/nexter-backend/internal/auth/service"
)

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	authService *service.AuthService
	google      *google.Client
}

func New(authService *service.AuthService, googleClient *google.Client) *Handler {
	return &Handler{
		authService: authService,
		google:      googleClient,
	}
}

type signupReq struct {
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Status   string   `json:"status,omitempty"`
	Goals    []string `json:"goals,omitempty"`
	Method   string   `json:"method,omitempty"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type googleCallbackReq struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type updateProfileReq struct {
	Name      *string  `json:"name,omitempty"`
	Headline  *string  `json:"headline,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Status    *string  `json:"status,omitempty"`
	Goals     []string `json:"goals,omitempty"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
