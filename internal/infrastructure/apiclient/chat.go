package apiclient

import (
	"context"
	"net/http"

	"github.com/resourcehub/portal/internal/core/domain"
)

func (c *Client) ChatSessions(ctx context.Context) (*domain.ChatSessionList, error) {
	var out domain.ChatSessionList
	if err := c.do(ctx, request{op: "chat sessions", method: http.MethodGet, path: "/chat/sessions"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateChatSession opens a conversation; an empty title gets the default.
func (c *Client) CreateChatSession(ctx context.Context, title string) (*domain.ChatSession, error) {
	if title == "" {
		title = domain.DefaultChatTitle
	}
	var out domain.ChatSession
	req := request{op: "create chat session", method: http.MethodPost, path: "/chat/sessions", body: map[string]string{"title": title}}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChatMessages(ctx context.Context, sessionID uint) (*domain.ChatMessageList, error) {
	var out domain.ChatMessageList
	req := request{op: "chat messages", method: http.MethodGet, path: idPath("/chat/sessions/%d/messages", sessionID)}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteChatSession(ctx context.Context, sessionID uint) error {
	return c.do(ctx, request{op: "delete chat session", method: http.MethodDelete, path: idPath("/chat/sessions/%d", sessionID)}, nil)
}

// SendChatMessage posts a user turn and returns the assistant's reply. The
// assistant can be slow, so this call gets the long timeout.
func (c *Client) SendChatMessage(ctx context.Context, sessionID uint, content string) (*domain.ChatMessage, error) {
	body := struct {
		SessionID uint   `json:"session_id"`
		Content   string `json:"content"`
	}{sessionID, content}

	var out domain.ChatMessage
	req := request{op: "send chat message", method: http.MethodPost, path: "/chat/messages", body: body, long: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
