package http

import "github.com/nexter-app/nexter-backend/internal/assistant/service"

// Handler bundles the dependencies for assistant HTTP endpoints.
type Handler struct {
	assistantService *service.AssistantService
}

func New(assistantService *service.AssistantService) *Handler {
	return &Handler{assistantService: assistantService}
}

// createUploadReq is the union body for the three upload kinds; only
// the fields matching kind are read.
type createUploadReq struct {
	Kind     string `json:"kind"`
	FileName string `json:"fileName,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
}

type analyzeReq struct {
	UploadID string `json:"uploadId"`
	UserRole string `json:"userRole,omitempty"`
}
