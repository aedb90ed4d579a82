package booking

import (
	"context"

	"bellavie/api"
	"bellavie/utils"

	"go.uber.org/zap"
)

// SlotSource yields bookable time slots ("HH:MM") for a provider and date.
type SlotSource interface {
	Slots(ctx context.Context, providerID, date string) ([]string, error)
}

// APISlotSource reads slots from the availability endpoint.
type APISlotSource struct {
	API *api.Client
}

func (s *APISlotSource) Slots(ctx context.Context, providerID, date string) ([]string, error) {
	return s.API.GetAvailability(ctx, providerID, date)
}

// SlotFallback supplies the substitute slot list used when the real source
// fails or comes back empty.
type SlotFallback interface {
	Slots(providerID, date string) []string
}

// DefaultSlotFallback offers hourly slots from 08:00 through 20:00 so the user
// is never blocked from proceeding. The backend still rejects conflicting
// bookings at submission time.
type DefaultSlotFallback struct{}

const (
	fallbackFirstSlot = 8 * 60  // 08:00
	fallbackLastSlot  = 20 * 60 // 20:00
)

func (DefaultSlotFallback) Slots(providerID, date string) []string {
	var slots []string
	for m := fallbackFirstSlot; m <= fallbackLastSlot; m += 60 {
		slots = append(slots, utils.MinutesToClock(m))
	}
	return slots
}

// FallbackSlotSource wraps a source with the degraded-mode policy: the
// fallback kicks in on error or on an empty result, and only then.
type FallbackSlotSource struct {
	Source   SlotSource
	Fallback SlotFallback
	Logger   *zap.Logger
}

func (f *FallbackSlotSource) Slots(ctx context.Context, providerID, date string) ([]string, error) {
	slots, err := f.Source.Slots(ctx, providerID, date)
	if err != nil {
		f.Logger.Warn("availability fetch failed, using fallback slots",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
		return f.Fallback.Slots(providerID, date), nil
	}
	if len(slots) == 0 {
		f.Logger.Debug("availability empty, using fallback slots",
			zap.String("providerID", providerID), zap.String("date", date))
		return f.Fallback.Slots(providerID, date), nil
	}
	return slots, nil
}
