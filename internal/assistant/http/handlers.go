package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexter-app/nexter-backend/internal/assistant/domain"
)

func (h *Handler) createUpload(c *gin.Context) {
	var req createUploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	switch req.Kind {
	case domain.KindFile, domain.KindLink, domain.KindText:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid upload kind"})
		return
	}
	if req.Kind == domain.KindLink && strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "url required for link uploads"})
		return
	}

	upload, err := h.assistantService.CreateUpload(c.Request.Context(), &domain.CreateUploadRequest{
		Kind:     req.Kind,
		FileName: req.FileName,
		MimeType: req.MimeType,
		Size:     req.Size,
		URL:      req.URL,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, upload)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UploadID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	analysis, err := h.assistantService.AnalyzeUpload(c.Request.Context(), req.UploadID, req.UserRole)
	if err != nil {
		if err == domain.ErrUploadNotFound {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "upload not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	uploadID := strings.TrimSpace(c.Param("upload_id"))

	analysis, err := h.assistantService.GetAnalysis(c.Request.Context(), uploadID)
	if err != nil {
		if err == domain.ErrAnalysisNotFound {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
