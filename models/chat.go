package models

import "time"

// MessageType tags what a chat message carries.
type MessageType string

const (
	MessageText              MessageType = "TEXT"
	MessageImage             MessageType = "IMAGE"
	MessageVoice             MessageType = "VOICE"
	MessageSystem            MessageType = "SYSTEM"
	MessageServiceSuggestion MessageType = "SERVICE_SUGGESTION"
)

// Chat is a conversation between a client and a provider.
type Chat struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	ProviderID  string       `json:"provider_id"`
	LastMessage *ChatMessage `json:"last_message,omitempty"`
	UnreadCount int          `json:"unread_count"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ChatMessage is a single message inside a chat.
type ChatMessage struct {
	ID          string      `json:"id"`
	ChatID      string      `json:"chat_id"`
	SenderID    string      `json:"sender_id"`
	Type        MessageType `json:"type"`
	Content     string      `json:"content,omitempty"`
	Attachments []string    `json:"attachments,omitempty"`
	// ServiceID is set for SERVICE_SUGGESTION messages.
	ServiceID string    `json:"service_id,omitempty"`
	OfferID   string    `json:"offer_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// OfferStatus is the offer lifecycle state.
type OfferStatus string

const (
	OfferPending  OfferStatus = "PENDING"
	OfferAccepted OfferStatus = "ACCEPTED"
	OfferDeclined OfferStatus = "DECLINED"
	OfferExpired  OfferStatus = "EXPIRED"
)

// Offer is a provider-proposed custom price/duration for a service, sent via
// chat. Pending offers expire at ExpiresAt.
type Offer struct {
	ID         string      `json:"id"`
	ChatID     string      `json:"chat_id"`
	ProviderID string      `json:"provider_id"`
	ServiceID  string      `json:"service_id"`
	Price      float64     `json:"price"`
	Duration   int         `json:"duration"` // minutes
	Status     OfferStatus `json:"status"`
	ExpiresAt  time.Time   `json:"expires_at"`
	CreatedAt  time.Time   `json:"created_at"`
}
