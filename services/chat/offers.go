package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"bellavie/api"
	"bellavie/models"

	"go.uber.org/zap"
)

// ErrOfferClosed is returned when responding to an offer that is no longer
// pending (already answered or expired).
var ErrOfferClosed = errors.New("offer is no longer pending")

// OfferBook tracks the offers of a conversation. Transitions are
// PENDING -> ACCEPTED | DECLINED (via the API) or PENDING -> EXPIRED (local
// sweep once the deadline passes; the server enforces the same deadline).
type OfferBook struct {
	api    *api.Client
	chatID string
	logger *zap.Logger

	mu     sync.Mutex
	offers map[string]models.Offer
}

// NewOfferBook creates an offer book for one chat.
func NewOfferBook(client *api.Client, chatID string, logger *zap.Logger) *OfferBook {
	return &OfferBook{
		api:    client,
		chatID: chatID,
		logger: logger,
		offers: make(map[string]models.Offer),
	}
}

// Load fetches the chat's offers.
func (b *OfferBook) Load(ctx context.Context) error {
	offers, err := b.api.ListOffers(ctx, b.chatID)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range offers {
		b.offers[o.ID] = o
	}
	return nil
}

// Ingest records an offer delivered through the message stream.
func (b *OfferBook) Ingest(offer models.Offer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.offers[offer.ID] = offer
}

// Get returns an offer by id.
func (b *OfferBook) Get(id string) (models.Offer, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.offers[id]
	return o, ok
}

// Pending returns the offers still awaiting an answer.
func (b *OfferBook) Pending() []models.Offer {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []models.Offer
	for _, o := range b.offers {
		if o.Status == models.OfferPending {
			out = append(out, o)
		}
	}
	return out
}

// Respond accepts or declines a pending offer and records the server's
// answer.
func (b *OfferBook) Respond(ctx context.Context, offerID string, accept bool) (*models.Offer, error) {
	b.mu.Lock()
	current, ok := b.offers[offerID]
	b.mu.Unlock()
	if ok && current.Status != models.OfferPending {
		return nil, ErrOfferClosed
	}
	if ok && !current.ExpiresAt.IsZero() && time.Now().After(current.ExpiresAt) {
		return nil, ErrOfferClosed
	}

	updated, err := b.api.RespondOffer(ctx, offerID, accept)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.offers[updated.ID] = *updated
	b.mu.Unlock()
	return updated, nil
}

// SweepExpired flips locally known pending offers past their deadline to
// EXPIRED and returns the affected ids.
func (b *OfferBook) SweepExpired(now time.Time) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var expired []string
	for id, o := range b.offers {
		if o.Status == models.OfferPending && !o.ExpiresAt.IsZero() && now.After(o.ExpiresAt) {
			o.Status = models.OfferExpired
			b.offers[id] = o
			expired = append(expired, id)
		}
	}
	return expired
}

// RunExpirySweep runs SweepExpired on a fixed cadence until the context is
// cancelled.
func (b *OfferBook) RunExpirySweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ids := b.SweepExpired(time.Now()); len(ids) > 0 {
				b.logger.Debug("offers expired locally", zap.Strings("ids", ids))
			}
		}
	}
}
