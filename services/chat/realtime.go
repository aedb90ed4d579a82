package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bellavie/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	heartbeatInterval = 25 * time.Second
	reconnectDelay    = 3 * time.Second
	writeTimeout      = 5 * time.Second
)

// realtimeFrame is the wire format of the channel. The server pushes INSERT
// events carrying the new message record; everything else is control traffic.
type realtimeFrame struct {
	Topic  string              `json:"topic"`
	Event  string              `json:"event"`
	Record *models.ChatMessage `json:"record,omitempty"`
}

// Subscriber maintains a websocket subscription keyed by chat id and feeds
// INSERT events into the thread. Delivery is at-least-once; deduplication
// happens in Thread.Ingest.
type Subscriber struct {
	URL    string
	Thread *Thread
	Logger *zap.Logger
	// Dialer defaults to websocket.DefaultDialer.
	Dialer *websocket.Dialer
}

// Run connects and resubscribes until the context is cancelled. Connection
// drops are logged and retried after a short delay.
func (s *Subscriber) Run(ctx context.Context) {
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	for {
		if ctx.Err() != nil {
			return
		}
		if err := s.runOnce(ctx, dialer); err != nil && ctx.Err() == nil {
			s.Logger.Warn("realtime connection lost, reconnecting",
				zap.String("chatID", s.Thread.ChatID()), zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *Subscriber) runOnce(ctx context.Context, dialer *websocket.Dialer) error {
	conn, _, err := dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return fmt.Errorf("realtime: dial failed: %w", err)
	}
	defer conn.Close()

	topic := "chat:" + s.Thread.ChatID()
	join := realtimeFrame{Topic: topic, Event: "subscribe"}
	if err := s.write(conn, join); err != nil {
		return fmt.Errorf("realtime: subscribe failed: %w", err)
	}
	s.Logger.Debug("realtime subscribed", zap.String("topic", topic))

	// Close the socket when the context ends so the read loop unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	go s.heartbeat(ctx, conn, topic, done)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var frame realtimeFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			s.Logger.Debug("realtime: dropping malformed frame", zap.Error(err))
			continue
		}
		if frame.Event != "INSERT" || frame.Record == nil {
			continue
		}
		s.Thread.Ingest(*frame.Record)
	}
}

func (s *Subscriber) heartbeat(ctx context.Context, conn *websocket.Conn, topic string, done <-chan struct{}) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			if err := s.write(conn, realtimeFrame{Topic: topic, Event: "heartbeat"}); err != nil {
				return
			}
		}
	}
}

func (s *Subscriber) write(conn *websocket.Conn, frame realtimeFrame) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(frame)
}
