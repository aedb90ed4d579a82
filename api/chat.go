package api

import (
	"context"
	"fmt"
	"net/url"

	"bellavie/models"
)

// SendMessageRequest is the payload for posting a chat message. ClientRef is
// the sender's correlation id; backends that echo it let the client reconcile
// the optimistic placeholder without content matching.
type SendMessageRequest struct {
	Type        models.MessageType `json:"type"`
	Content     string             `json:"content,omitempty"`
	Attachments []string           `json:"attachments,omitempty"`
	ServiceID   string             `json:"service_id,omitempty"`
	ClientRef   string             `json:"client_ref,omitempty"`
}

// ListChats returns the caller's conversations, most recently active first.
func (c *Client) ListChats(ctx context.Context) ([]models.Chat, error) {
	var out []models.Chat
	if err := c.get(ctx, "/chats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateChat opens (or returns the existing) conversation with a provider.
func (c *Client) CreateChat(ctx context.Context, providerID string) (*models.Chat, error) {
	var out models.Chat
	body := map[string]string{"provider_id": providerID}
	if err := c.post(ctx, "/chats", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages returns messages for a chat in chronological order. A non-empty
// afterID restricts the result to messages newer than that id, which is what
// the polling delivery path uses.
func (c *Client) ListMessages(ctx context.Context, chatID, afterID string) ([]models.ChatMessage, error) {
	q := url.Values{}
	if afterID != "" {
		q.Set("after", afterID)
	}
	var out []models.ChatMessage
	path := fmt.Sprintf("/chats/%s/messages", url.PathEscape(chatID))
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a message and returns the server-confirmed record.
func (c *Client) SendMessage(ctx context.Context, chatID string, req SendMessageRequest) (*models.ChatMessage, error) {
	var out models.ChatMessage
	path := fmt.Sprintf("/chats/%s/messages", url.PathEscape(chatID))
	if err := c.post(ctx, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkRead marks all of the chat's messages as read for the caller.
func (c *Client) MarkRead(ctx context.Context, chatID string) error {
	path := fmt.Sprintf("/chats/%s/read", url.PathEscape(chatID))
	return c.post(ctx, path, nil, nil)
}

// RespondOffer accepts or declines a pending offer.
func (c *Client) RespondOffer(ctx context.Context, offerID string, accept bool) (*models.Offer, error) {
	action := "decline"
	if accept {
		action = "accept"
	}
	var out models.Offer
	path := fmt.Sprintf("/offers/%s/%s", url.PathEscape(offerID), action)
	if err := c.post(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOffers returns the offers attached to a chat.
func (c *Client) ListOffers(ctx context.Context, chatID string) ([]models.Offer, error) {
	var out []models.Offer
	path := fmt.Sprintf("/chats/%s/offers", url.PathEscape(chatID))
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
