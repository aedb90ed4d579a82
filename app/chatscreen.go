package app

import (
	"context"
	"fmt"
	"time"

	"bellavie/api"
	"bellavie/config"
	"bellavie/models"
	"bellavie/services/chat"
	"bellavie/utils"

	"go.uber.org/zap"
)

const offerSweepInterval = time.Minute

// ChatScreenParams configures the chat screen.
type ChatScreenParams struct {
	ProviderID string
	// Message, when set, is sent after the history loads.
	Message string
	// Realtime selects the push channel; false falls back to polling.
	Realtime bool
	// Follow keeps the screen open, printing messages as they arrive,
	// until the context is cancelled.
	Follow bool
}

// ChatScreen opens (or resumes) the conversation with a provider.
func (a *App) ChatScreen(ctx context.Context, p ChatScreenParams) error {
	userID, err := a.Session.UserID()
	if err != nil {
		return err
	}

	conv, err := a.API.CreateChat(ctx, p.ProviderID)
	if err != nil {
		return err
	}

	thread := chat.NewThread(a.API, conv.ID, userID, a.Logger)
	if err := thread.LoadHistory(ctx); err != nil {
		return err
	}
	for _, m := range thread.Messages() {
		a.printMessage(m, userID)
	}
	if err := thread.MarkRead(ctx); err != nil {
		a.Logger.Debug("mark-read failed", zap.Error(err))
	}

	book := chat.NewOfferBook(a.API, conv.ID, a.Logger)
	if err := book.Load(ctx); err != nil {
		a.Logger.Debug("offer load failed", zap.Error(err))
	}
	for _, o := range book.Pending() {
		fmt.Fprintf(a.Out, "  * %s %s: %s %s\n", a.Bundle.T("chat.offer.pending"),
			o.ID, utils.FormatXAF(o.Price), utils.FormatDuration(o.Duration))
	}

	if p.Message != "" {
		if _, err := thread.Send(ctx, api.SendMessageRequest{
			Type:    models.MessageText,
			Content: p.Message,
		}); err != nil {
			fmt.Fprintf(a.Out, "  ! %s\n", a.Bundle.T("chat.failed"))
			return err
		}
	}

	if !p.Follow {
		return nil
	}

	thread.OnChange(func() {
		msgs := thread.Messages()
		if len(msgs) > 0 {
			a.printMessage(msgs[len(msgs)-1], userID)
		}
	})

	// Expire locally-known pending offers while the screen stays open.
	go book.RunExpirySweep(ctx, offerSweepInterval)

	if p.Realtime {
		sub := &chat.Subscriber{
			URL:    config.AppConfig.RealtimeURL,
			Thread: thread,
			Logger: a.Logger,
		}
		sub.Run(ctx)
		return nil
	}

	poller := &chat.Poller{
		API:      a.API,
		Thread:   thread,
		Interval: config.AppConfig.ChatPollInterval,
		Logger:   a.Logger,
	}
	poller.Run(ctx)
	return nil
}

func (a *App) printMessage(m models.ChatMessage, selfID string) {
	who := "them"
	if m.SenderID == selfID {
		who = "me"
	}
	switch m.Type {
	case models.MessageImage, models.MessageVoice:
		fmt.Fprintf(a.Out, "[%s] %-4s <%s> %v\n", m.CreatedAt.Format("15:04"), who, m.Type, m.Attachments)
	default:
		fmt.Fprintf(a.Out, "[%s] %-4s %s\n", m.CreatedAt.Format("15:04"), who, m.Content)
	}
}
