package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexter-app/nexter-backend/internal/auth/domain"
	"github.com/nexter-app/nexter-backend/internal/auth/middleware"
)

func (h *Handler) signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	user, tok, err := h.authService.Signup(c.Request.Context(), &domain.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Status:   req.Status,
		Goals:    req.Goals,
		Method:   req.Method,
	})
	if err != nil {
		if err == domain.ErrEmailTaken {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": tok, "user": user})
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	user, tok, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok, "user": user})
}

func (h *Handler) googleLogin(c *gin.Context) {
	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	h.finishGoogleLogin(c, req.Email, req.Name)
}

// googleCallback exchanges the OAuth authorization code posted by the
// SPA callback page, then continues as a google login for the profile
// behind it.
func (h *Handler) googleCallback(c *gin.Context) {
	var req googleCallbackReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if h.google == nil || !h.google.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "google login is not configured"})
		return
	}

	profile, err := h.google.Exchange(c.Request.Context(), req.Code, req.RedirectURI)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "google code exchange failed"})
		return
	}

	h.finishGoogleLogin(c, profile.Email, profile.Name)
}

func (h *Handler) finishGoogleLogin(c *gin.Context, email, name string) {
	user, tok, err := h.authService.GoogleLogin(c.Request.Context(), email, name)
	if err != nil {
		if err == domain.ErrMethodMismatch {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "email registered with a different method"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok, "user": user})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserID(c)

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, &domain.UpdateUserRequest{
		Name:      req.Name,
		Headline:  req.Headline,
		AvatarURL: req.AvatarURL,
		Phone:     req.Phone,
		Status:    req.Status,
		Goals:     req.Goals,
	})
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) changePassword(c *gin.Context) {
	userID := middleware.UserID(c)

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "current password does not match"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
