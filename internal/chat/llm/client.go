package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the upstream AI server's /chat endpoint. A nil or
// unconfigured client means the caller should fall back to the local
// composer.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != ""
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message   string    `json:"message"`
	History   []Message `json:"history,omitempty"`
	ProjectID string    `json:"project_id,omitempty"`
	UserRole  string    `json:"user_role,omitempty"`
}

type ChatResponse struct {
	OK     bool   `json:"ok"`
	Answer string `json:"answer"`
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	b, _ := json.Marshal(req)

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewReader(b))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ai chat: %w", err)
	}
	defer resp.Body.Close()

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ai decode: %w", err)
	}
	if resp.StatusCode >= 400 || !out.OK {
		return &out, fmt.Errorf("ai error (status %d)", resp.StatusCode)
	}
	return &out, nil
}
