package chat

import (
	"sync"
	"time"

	"bellavie/models"
)

// OpState is the lifecycle of a pending send.
type OpState string

const (
	OpPending   OpState = "PENDING"
	OpConfirmed OpState = "CONFIRMED"
	OpFailed    OpState = "FAILED"
)

// PendingMessage is an optimistic message awaiting server acknowledgment,
// keyed by a client-generated correlation id that doubles as its temporary
// message id.
type PendingMessage struct {
	CorrelationID string
	Message       models.ChatMessage
	State         OpState
	Err           error
	EnqueuedAt    time.Time
}

// Outbox tracks pending sends as an explicit list of operations rather than
// ad hoc scanning of the rendered message array. Operations resolve to
// CONFIRMED (and leave the outbox) or FAILED (and stay, for retry-by-user).
type Outbox struct {
	mu  sync.Mutex
	ops []*PendingMessage
}

// NewOutbox returns an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

// Add registers an optimistic message under its correlation id.
func (o *Outbox) Add(correlationID string, msg models.ChatMessage) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, &PendingMessage{
		CorrelationID: correlationID,
		Message:       msg,
		State:         OpPending,
		EnqueuedAt:    time.Now(),
	})
}

// Confirm resolves the operation and drops it from the outbox.
func (o *Outbox) Confirm(correlationID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, op := range o.ops {
		if op.CorrelationID == correlationID && op.State == OpPending {
			op.State = OpConfirmed
			o.ops = append(o.ops[:i], o.ops[i+1:]...)
			return true
		}
	}
	return false
}

// Fail marks the operation failed. It stays listed so the UI can offer a
// manual resend.
func (o *Outbox) Fail(correlationID string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, op := range o.ops {
		if op.CorrelationID == correlationID && op.State == OpPending {
			op.State = OpFailed
			op.Err = err
			return
		}
	}
}

// Remove drops an operation regardless of state (used after a user discards a
// failed send).
func (o *Outbox) Remove(correlationID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, op := range o.ops {
		if op.CorrelationID == correlationID {
			o.ops = append(o.ops[:i], o.ops[i+1:]...)
			return
		}
	}
}

// MatchIncoming reconciles a server-delivered message against the oldest
// pending operation with the same sender and content. On a match the
// operation is confirmed and removed, so the optimistic placeholder is
// replaced rather than duplicated.
func (o *Outbox) MatchIncoming(msg models.ChatMessage) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, op := range o.ops {
		if op.State != OpPending {
			continue
		}
		if op.Message.SenderID == msg.SenderID && op.Message.Content == msg.Content && op.Message.Type == msg.Type {
			id := op.CorrelationID
			op.State = OpConfirmed
			o.ops = append(o.ops[:i], o.ops[i+1:]...)
			return id, true
		}
	}
	return "", false
}

// Entries returns a snapshot of the outstanding operations in enqueue order.
func (o *Outbox) Entries() []PendingMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]PendingMessage, len(o.ops))
	for i, op := range o.ops {
		out[i] = *op
	}
	return out
}
