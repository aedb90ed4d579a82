package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bellavie/api"
	"bellavie/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chatServer(t *testing.T, sendStatus int) (*httptest.Server, *api.Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /chats/chat-1/messages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.ChatMessage{})
	})
	mux.HandleFunc("POST /chats/chat-1/messages", func(w http.ResponseWriter, r *http.Request) {
		if sendStatus != http.StatusOK {
			w.WriteHeader(sendStatus)
			json.NewEncoder(w).Encode(api.ErrorResponse{Message: "send rejected"})
			return
		}
		var req api.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(models.ChatMessage{
			ID:        "srv-1",
			ChatID:    "chat-1",
			SenderID:  "user-1",
			Type:      req.Type,
			Content:   req.Content,
			CreatedAt: time.Now(),
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, api.NewClient(srv.URL, srv.Client())
}

func TestThreadSendConfirmsOptimisticMessage(t *testing.T) {
	_, client := chatServer(t, http.StatusOK)
	thread := NewThread(client, "chat-1", "user-1", zap.NewNop())

	msg, err := thread.Send(context.Background(), api.SendMessageRequest{
		Type:    models.MessageText,
		Content: "bonjour",
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", msg.ID)

	// Exactly one message: the placeholder was replaced, not duplicated.
	rendered := thread.Messages()
	require.Len(t, rendered, 1)
	assert.Equal(t, "srv-1", rendered[0].ID)
	assert.Empty(t, thread.Pending())
}

func TestThreadSendCarriesClientRef(t *testing.T) {
	var gotRef string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chats/chat-1/messages", func(w http.ResponseWriter, r *http.Request) {
		var req api.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotRef = req.ClientRef
		json.NewEncoder(w).Encode(models.ChatMessage{
			ID: "srv-1", ChatID: "chat-1", SenderID: "user-1",
			Type: req.Type, Content: req.Content, CreatedAt: time.Now(),
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	thread := NewThread(api.NewClient(srv.URL, srv.Client()), "chat-1", "user-1", zap.NewNop())
	_, err := thread.Send(context.Background(), api.SendMessageRequest{
		Type:    models.MessageText,
		Content: "bonjour",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, gotRef)
}

func TestThreadSendFailureKeepsPending(t *testing.T) {
	_, client := chatServer(t, http.StatusBadGateway)
	thread := NewThread(client, "chat-1", "user-1", zap.NewNop())

	_, err := thread.Send(context.Background(), api.SendMessageRequest{
		Type:    models.MessageText,
		Content: "bonjour",
	})
	require.Error(t, err)

	pending := thread.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, OpFailed, pending[0].State)

	// The failed placeholder still renders so the user can retry.
	assert.Len(t, thread.Messages(), 1)
}

func TestThreadRealtimeInsertReconcilesOwnMessage(t *testing.T) {
	_, client := chatServer(t, http.StatusOK)
	thread := NewThread(client, "chat-1", "user-1", zap.NewNop())

	// Simulate the realtime INSERT for our own message arriving before any
	// acknowledgment: seed the outbox directly.
	thread.outbox.Add("corr-1", models.ChatMessage{
		ID:        "corr-1",
		ChatID:    "chat-1",
		SenderID:  "user-1",
		Type:      models.MessageText,
		Content:   "bonjour",
		CreatedAt: time.Now(),
	})
	require.Len(t, thread.Messages(), 1)

	thread.Ingest(models.ChatMessage{
		ID:        "srv-9",
		ChatID:    "chat-1",
		SenderID:  "user-1",
		Type:      models.MessageText,
		Content:   "bonjour",
		CreatedAt: time.Now(),
	})

	rendered := thread.Messages()
	require.Len(t, rendered, 1)
	assert.Equal(t, "srv-9", rendered[0].ID)
	assert.Empty(t, thread.Pending())
}

func TestThreadIngestDeduplicatesByID(t *testing.T) {
	_, client := chatServer(t, http.StatusOK)
	thread := NewThread(client, "chat-1", "user-1", zap.NewNop())

	msg := models.ChatMessage{ID: "srv-1", SenderID: "user-2", Content: "hi", CreatedAt: time.Now()}
	thread.Ingest(msg)
	thread.Ingest(msg)
	thread.Ingest(msg)

	assert.Len(t, thread.Messages(), 1)
}

func TestThreadMessagesOrderedByTime(t *testing.T) {
	_, client := chatServer(t, http.StatusOK)
	thread := NewThread(client, "chat-1", "user-1", zap.NewNop())

	base := time.Now()
	thread.Ingest(models.ChatMessage{ID: "b", SenderID: "user-2", Content: "second", CreatedAt: base.Add(time.Minute)})
	thread.Ingest(models.ChatMessage{ID: "a", SenderID: "user-2", Content: "first", CreatedAt: base})

	rendered := thread.Messages()
	require.Len(t, rendered, 2)
	assert.Equal(t, "a", rendered[0].ID)
	assert.Equal(t, "b", rendered[1].ID)
}
