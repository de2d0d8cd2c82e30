package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Chat is a server-owned conversation.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage is one completed exchange: the outgoing message and the
// assistant's response.
type ChatMessage struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id,omitempty"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessageRequest carries an outgoing message. ChatID is empty for the
// first message of a new conversation; the server mints the chat and echoes
// its id back.
type SendMessageRequest struct {
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	ChatID   string `json:"chat_id,omitempty"`
}

// SendMessage posts a message and returns the authoritative exchange.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*ChatMessage, error) {
	var resp ChatMessage
	if err := c.doJSON(ctx, http.MethodPost, "/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetHistory returns the full transcript of a chat, oldest first.
func (c *Client) GetHistory(ctx context.Context, chatID string) ([]ChatMessage, error) {
	var resp struct {
		Messages []ChatMessage `json:"messages"`
	}
	path := "/chat/" + url.PathEscape(chatID) + "/history"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// ListChats returns every chat belonging to the authenticated user.
func (c *Client) ListChats(ctx context.Context) ([]Chat, error) {
	var resp struct {
		Chats []Chat `json:"chats"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/chats", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Chats, nil
}

// DeleteChat removes a chat and all of its messages.
func (c *Client) DeleteChat(ctx context.Context, chatID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/chats/"+url.PathEscape(chatID), nil, nil)
}
