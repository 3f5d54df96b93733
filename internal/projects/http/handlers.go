package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authmw "github.com/nexter-app/nexter-backend/internal/auth/middleware"
	"github.com/nexter-app/nexter-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p := &domain.Project{
		OwnerID:      authmw.UserID(c),
		Title:        strings.TrimSpace(req.Title),
		Category:     req.Category,
		Tags:         req.Tags,
		Summary:      req.Summary,
		Type:         req.Type,
		SourceURL:    req.SourceURL,
		Period:       req.Period,
		Role:         req.Role,
		Achievements: req.Achievements,
		Tools:        req.Tools,
		Description:  req.Description,
	}
	if p.Type == "" {
		p.Type = "project"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": toView(p)})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), authmw.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	views := make([]projectView, 0, len(items))
	for i := range items {
		views = append(views, toView(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": views})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	ownerID := authmw.UserID(c)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.repo.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Tags != nil {
		p.Tags = req.Tags
	}
	if req.Summary != nil {
		p.Summary = *req.Summary
	}
	if req.SourceURL != nil {
		p.SourceURL = req.SourceURL
	}
	if req.Period != nil {
		p.Period = req.Period
	}
	if req.Role != nil {
		p.Role = req.Role
	}
	if req.Achievements != nil {
		p.Achievements = req.Achievements
	}
	if req.Tools != nil {
		p.Tools = req.Tools
	}
	if req.Description != nil {
		p.Description = req.Description
	}

	if err := h.repo.Update(c.Request.Context(), p); err != nil {
		if err == domain.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": toView(p)})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.repo.Delete(c.Request.Context(), authmw.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
