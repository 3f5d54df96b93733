package http

import "github.com/gin-gonic/gin"

// Register attaches auth and profile routes. requireUser guards the
// endpoints that act on the authenticated account.
func (h *Handler) Register(rg *gin.RouterGroup, requireUser gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	authGroup.POST("/signup", h.signup)
	authGroup.POST("/login", h.login)
	authGroup.POST("/google", h.googleLogin)
	authGroup.POST("/google/callback", h.googleCallback)
	authGroup.POST("/password", requireUser, h.changePassword)

	profiles := rg.Group("/profiles")
	profiles.GET("/me", requireUser, h.me)
	profiles.PUT("/me", requireUser, h.updateProfile)
}
