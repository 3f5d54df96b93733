package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexter-app/nexter-backend/internal/assets/domain"
	"github.com/nexter-app/nexter-backend/internal/assets/repository"
	authmw "github.com/nexter-app/nexter-backend/internal/auth/middleware"
)

// Handler bundles the dependencies for asset HTTP endpoints.
type Handler struct {
	repo repository.AssetRepo
}

func New(repo repository.AssetRepo) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	asset := &domain.Asset{
		OwnerID: authmw.UserID(c),
		URL:     strings.TrimSpace(req.URL),
		Title:   strings.TrimSpace(req.Title),
	}
	if err := h.repo.Create(c.Request.Context(), asset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "asset": asset})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), authmw.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "assets": items})
}

// Register attaches asset routes to the given router group. The group
// is expected to carry the bearer-auth middleware.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
}
