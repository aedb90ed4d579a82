package chat

import (
	"context"
	"time"

	"bellavie/api"

	"go.uber.org/zap"
)

// Poller is the interval delivery path: fetch messages newer than the last
// seen id on a fixed cadence. Used where no realtime channel is available.
type Poller struct {
	API      *api.Client
	Thread   *Thread
	Interval time.Duration
	Logger   *zap.Logger
}

// Run polls until the context is cancelled. A failed poll is logged and
// skipped; the next tick tries again.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			msgs, err := p.API.ListMessages(ctx, p.Thread.ChatID(), p.Thread.LastID())
			if err != nil {
				p.Logger.Debug("chat poll failed", zap.String("chatID", p.Thread.ChatID()), zap.Error(err))
				continue
			}
			for _, m := range msgs {
				p.Thread.Ingest(m)
			}
		}
	}
}
