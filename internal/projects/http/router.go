package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. The
// group is expected to carry the bearer-auth middleware.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}
