package booking

import (
	"context"
	"errors"
	"testing"

	"bellavie/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSlotSource struct {
	slots []string
	err   error
}

func (s *stubSlotSource) Slots(ctx context.Context, providerID, date string) ([]string, error) {
	return s.slots, s.err
}

func hourly(from, to int) []string {
	var out []string
	for h := from; h <= to; h++ {
		out = append(out, utils.MinutesToClock(h*60))
	}
	return out
}

func TestFallbackSlotSourcePassesThroughRealSlots(t *testing.T) {
	src := &FallbackSlotSource{
		Source:   &stubSlotSource{slots: []string{"09:30", "14:00"}},
		Fallback: DefaultSlotFallback{},
		Logger:   zap.NewNop(),
	}

	slots, err := src.Slots(context.Background(), "prov-1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "14:00"}, slots)
}

func TestFallbackSlotSourceOnError(t *testing.T) {
	src := &FallbackSlotSource{
		Source:   &stubSlotSource{err: errors.New("boom")},
		Fallback: DefaultSlotFallback{},
		Logger:   zap.NewNop(),
	}

	slots, err := src.Slots(context.Background(), "prov-1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, hourly(8, 20), slots)
}

func TestFallbackSlotSourceOnEmpty(t *testing.T) {
	src := &FallbackSlotSource{
		Source:   &stubSlotSource{slots: []string{}},
		Fallback: DefaultSlotFallback{},
		Logger:   zap.NewNop(),
	}

	slots, err := src.Slots(context.Background(), "prov-1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, hourly(8, 20), slots)
}

func TestDefaultSlotFallbackShape(t *testing.T) {
	slots := DefaultSlotFallback{}.Slots("prov-1", "2026-09-01")
	require.Len(t, slots, 13)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "20:00", slots[len(slots)-1])
}
