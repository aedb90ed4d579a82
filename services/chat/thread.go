// Package chat holds the conversation engine: a thread merging confirmed
// history with an optimistic outbox, fed by either a realtime subscription
// (web delivery path) or an interval poller (mobile delivery path). Both
// paths funnel through Ingest, which deduplicates at-least-once delivery by
// server message id and reconciles optimistic placeholders.
package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"bellavie/api"
	"bellavie/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Thread is one open conversation.
type Thread struct {
	chatID string
	selfID string
	api    *api.Client
	logger *zap.Logger
	outbox *Outbox

	mu       sync.Mutex
	messages []models.ChatMessage
	seen     map[string]struct{}
	onChange func()
}

// NewThread opens a thread for the signed-in user.
func NewThread(client *api.Client, chatID, selfID string, logger *zap.Logger) *Thread {
	return &Thread{
		chatID: chatID,
		selfID: selfID,
		api:    client,
		logger: logger,
		outbox: NewOutbox(),
		seen:   make(map[string]struct{}),
	}
}

// ChatID returns the conversation id.
func (t *Thread) ChatID() string { return t.chatID }

// OnChange registers a callback fired after every state change. One consumer
// (the rendering screen) is enough for this client.
func (t *Thread) OnChange(fn func()) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

func (t *Thread) notify() {
	t.mu.Lock()
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// LoadHistory fetches the full message history.
func (t *Thread) LoadHistory(ctx context.Context) error {
	msgs, err := t.api.ListMessages(ctx, t.chatID, "")
	if err != nil {
		return err
	}
	for _, m := range msgs {
		t.ingest(m)
	}
	t.notify()
	return nil
}

// LastID returns the id of the newest confirmed message, for incremental
// polling.
func (t *Thread) LastID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.messages) == 0 {
		return ""
	}
	return t.messages[len(t.messages)-1].ID
}

// Send delivers a message optimistically: the placeholder appears at once
// under a temporary id, then resolves to CONFIRMED or FAILED when the server
// answers.
func (t *Thread) Send(ctx context.Context, req api.SendMessageRequest) (*models.ChatMessage, error) {
	correlationID := uuid.New().String()
	req.ClientRef = correlationID
	placeholder := models.ChatMessage{
		ID:          correlationID,
		ChatID:      t.chatID,
		SenderID:    t.selfID,
		Type:        req.Type,
		Content:     req.Content,
		Attachments: req.Attachments,
		ServiceID:   req.ServiceID,
		CreatedAt:   time.Now(),
	}
	t.outbox.Add(correlationID, placeholder)
	t.notify()

	confirmed, err := t.api.SendMessage(ctx, t.chatID, req)
	if err != nil {
		t.outbox.Fail(correlationID, err)
		t.logger.Warn("chat send failed", zap.String("chatID", t.chatID), zap.Error(err))
		t.notify()
		return nil, err
	}

	t.outbox.Confirm(correlationID)
	t.ingest(*confirmed)
	t.notify()
	return confirmed, nil
}

// Ingest feeds a server-delivered message into the thread. Safe to call from
// the realtime and polling paths concurrently; duplicates are dropped by id.
func (t *Thread) Ingest(msg models.ChatMessage) {
	if t.ingest(msg) {
		t.notify()
	}
}

func (t *Thread) ingest(msg models.ChatMessage) bool {
	t.mu.Lock()
	if _, dup := t.seen[msg.ID]; dup {
		t.mu.Unlock()
		return false
	}
	t.seen[msg.ID] = struct{}{}
	t.messages = append(t.messages, msg)
	sort.SliceStable(t.messages, func(i, j int) bool {
		return t.messages[i].CreatedAt.Before(t.messages[j].CreatedAt)
	})
	t.mu.Unlock()

	// A realtime INSERT of our own message may arrive before (or instead of)
	// the send acknowledgment; reconcile it so the placeholder is replaced.
	if msg.SenderID == t.selfID {
		t.outbox.MatchIncoming(msg)
	}
	return true
}

// Messages returns the rendered view: confirmed history followed by
// still-pending placeholders, in chronological order.
func (t *Thread) Messages() []models.ChatMessage {
	t.mu.Lock()
	out := make([]models.ChatMessage, len(t.messages))
	copy(out, t.messages)
	t.mu.Unlock()

	for _, op := range t.outbox.Entries() {
		out = append(out, op.Message)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Pending exposes the outbox state for rendering send indicators.
func (t *Thread) Pending() []PendingMessage {
	return t.outbox.Entries()
}

// MarkRead marks the conversation read server-side.
func (t *Thread) MarkRead(ctx context.Context) error {
	return t.api.MarkRead(ctx, t.chatID)
}
