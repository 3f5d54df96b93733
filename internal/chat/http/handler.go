package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexter-app/nexter-backend/internal/chat/llm"
	"github.com/nexter-app/nexter-backend/internal/chat/service"
)

// Handler bundles the dependencies for the chat endpoint.
type Handler struct {
	chatService *service.ChatService
}

func New(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

type chatReq struct {
	Message   string        `json:"message"`
	History   []llm.Message `json:"history,omitempty"`
	ProjectID string        `json:"projectId,omitempty"`
	UserRole  string        `json:"userRole,omitempty"`
}

// chat always answers 200: the service falls back to the local
// composer when the upstream AI server is missing or failing.
func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	answer := h.chatService.Reply(c.Request.Context(), service.ChatInput{
		Message:   req.Message,
		History:   req.History,
		ProjectID: req.ProjectID,
		UserRole:  req.UserRole,
	})

	c.JSON(http.StatusOK, gin.H{
		"id":        uuid.New().String(),
		"role":      "ai",
		"content":   answer,
		"timestamp": time.Now().UTC(),
	})
}

// Register attaches the chat route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}
