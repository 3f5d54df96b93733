package http

import (
	"github.com/nexter-app/nexter-backend/internal/projects/category"
	"github.com/nexter-app/nexter-backend/internal/projects/domain"
	"github.com/nexter-app/nexter-backend/internal/projects/repository"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	repo repository.ProjectRepo
}

func New(repo repository.ProjectRepo) *Handler {
	return &Handler{repo: repo}
}

type createReq struct {
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Type         string   `json:"type,omitempty"`
	SourceURL    *string  `json:"sourceUrl,omitempty"`
	Period       *string  `json:"period,omitempty"`
	Role         *string  `json:"role,omitempty"`
	Achievements *string  `json:"achievements,omitempty"`
	Tools        *string  `json:"tools,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

type updateReq struct {
	Title        *string  `json:"title,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Summary      *string  `json:"summary,omitempty"`
	SourceURL    *string  `json:"sourceUrl,omitempty"`
	Period       *string  `json:"period,omitempty"`
	Role         *string  `json:"role,omitempty"`
	Achievements *string  `json:"achievements,omitempty"`
	Tools        *string  `json:"tools,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// projectView is a Project plus the icon pair the SPA renders for the
// category.
type projectView struct {
	*domain.Project
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
}

func toView(p *domain.Project) projectView {
	info := category.Resolve(p.Category)
	return projectView{Project: p, Icon: info.Icon, Gradient: info.Gradient}
}
