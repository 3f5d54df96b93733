package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nexter-app/nexter-backend/internal/chat/llm"
)

// ChatService answers assistant chat turns. With an upstream AI server
// configured it proxies there; otherwise it composes a deterministic
// reply locally. Chat never fails: upstream errors fall back to the
// composer.
type ChatService struct {
	ai *llm.Client
}

func NewChatService(ai *llm.Client) *ChatService {
	return &ChatService{ai: ai}
}

// ChatInput is one chat turn from the SPA.
type ChatInput struct {
	Message   string
	History   []llm.Message
	ProjectID string
	UserRole  string
}

// Reply produces the assistant answer for the turn.
func (s *ChatService) Reply(ctx context.Context, in ChatInput) string {
	if s.ai.Configured() {
		resp, err := s.ai.Chat(ctx, llm.ChatRequest{
			Message:   in.Message,
			History:   in.History,
			ProjectID: in.ProjectID,
			UserRole:  in.UserRole,
		})
		if err == nil && resp.Answer != "" {
			return resp.Answer
		}
		log.Printf("chat: upstream unavailable, using local composer: %v", err)
	}

	return compose(in)
}

// compose builds the canned multi-paragraph reply, echoing the last
// user message and weaving in the role and project when present.
func compose(in ChatInput) string {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		message = lastUserMessage(in.History)
	}

	var b strings.Builder

	if message == "" {
		b.WriteString("안녕하세요! 저는 Nexter, 당신의 커리어 성장 파트너입니다.\n")
		b.WriteString("프로젝트 경험을 공유해 주시면 강점을 함께 정리해드릴게요.")
		return b.String()
	}

	fmt.Fprintf(&b, "\"%s\" 에 대해 말씀해 주셔서 감사합니다.\n\n", summarize(message))

	if in.UserRole != "" {
		fmt.Fprintf(&b, "%s 직무 관점에서 보면, 이 경험은 문제 정의와 해결 과정을 보여주는 좋은 사례입니다. ", in.UserRole)
	} else {
		b.WriteString("이 경험은 문제 정의와 해결 과정을 보여주는 좋은 사례입니다. ")
	}
	b.WriteString("어떤 목표를 세웠고 어떤 성과로 이어졌는지 수치와 함께 정리하면 설득력이 훨씬 높아집니다.\n\n")

	if in.ProjectID != "" {
		fmt.Fprintf(&b, "선택하신 프로젝트(%s)에 이 내용을 반영해 두었습니다. ", in.ProjectID)
	}
	b.WriteString("이어서 맡으셨던 역할이나 가장 어려웠던 점을 들려주시면 자기소개서 문장으로 다듬어 드릴게요.")

	return b.String()
}

func lastUserMessage(history []llm.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" && strings.TrimSpace(history[i].Content) != "" {
			return strings.TrimSpace(history[i].Content)
		}
	}
	return ""
}

// summarize keeps echoed text short enough for one sentence.
func summarize(message string) string {
	runes := []rune(message)
	if len(runes) <= 40 {
		return message
	}
	return string(runes[:40]) + "…"
}
