package http

import "github.com/gin-gonic/gin"

// Register attaches assistant routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.createUpload)
	rg.POST("/analyze", h.analyze)
	rg.GET("/analysis/:upload_id", h.getAnalysis)
}
