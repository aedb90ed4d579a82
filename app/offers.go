package app

import (
	"context"
	"fmt"

	"bellavie/models"
	"bellavie/services/chat"
	"bellavie/utils"
)

// OffersParams configures the offers screen.
type OffersParams struct {
	ProviderID string
	// RespondID, when set, answers that offer instead of listing.
	RespondID string
	Accept    bool
}

// Offers lists the pending offers in the conversation with a provider, or
// answers one of them.
func (a *App) Offers(ctx context.Context, p OffersParams) error {
	if _, err := a.Session.UserID(); err != nil {
		return err
	}
	conv, err := a.API.CreateChat(ctx, p.ProviderID)
	if err != nil {
		return err
	}

	book := chat.NewOfferBook(a.API, conv.ID, a.Logger)
	if err := book.Load(ctx); err != nil {
		return err
	}

	if p.RespondID != "" {
		updated, err := book.Respond(ctx, p.RespondID, p.Accept)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "%s: %s %s %s\n",
			updated.ID, a.Bundle.T(offerStatusKey(updated.Status)),
			utils.FormatXAF(updated.Price), utils.FormatDuration(updated.Duration))
		return nil
	}

	for _, o := range book.Pending() {
		fmt.Fprintf(a.Out, "%-12s %-12s %10s %-6s  %s %s\n",
			o.ID, o.ServiceID, utils.FormatXAF(o.Price), utils.FormatDuration(o.Duration),
			a.Bundle.T("chat.offer.pending"), o.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func offerStatusKey(s models.OfferStatus) string {
	switch s {
	case models.OfferAccepted:
		return "chat.offer.accepted"
	case models.OfferDeclined:
		return "chat.offer.declined"
	case models.OfferExpired:
		return "chat.offer.expired"
	default:
		return "chat.offer.pending"
	}
}
