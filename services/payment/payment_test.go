package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulatedChargeSucceeds(t *testing.T) {
	g := &SimulatedGateway{Logger: zap.NewNop(), Delay: time.Millisecond}

	receipt, err := g.Charge(context.Background(), ChargeRequest{
		Amount:      5000,
		Currency:    "XAF",
		Method:      MethodMobileMoney,
		PhoneNumber: "+237670000000",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.Reference, "sim_"))
	assert.Equal(t, "paid", receipt.Status)
	assert.Equal(t, 5000.0, receipt.Amount)
	assert.Equal(t, MethodMobileMoney, receipt.Method)
}

func TestChargeValidation(t *testing.T) {
	g := &SimulatedGateway{Logger: zap.NewNop(), Delay: time.Millisecond}
	ctx := context.Background()

	tests := []struct {
		name string
		req  ChargeRequest
	}{
		{"zero amount", ChargeRequest{Currency: "XAF", Method: MethodCard}},
		{"missing currency", ChargeRequest{Amount: 1000, Method: MethodCard}},
		{"mobile money without phone", ChargeRequest{Amount: 1000, Currency: "XAF", Method: MethodMobileMoney}},
		{"unknown method", ChargeRequest{Amount: 1000, Currency: "XAF", Method: "cash"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Charge(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestChargeHonoursContextCancellation(t *testing.T) {
	g := &SimulatedGateway{Logger: zap.NewNop(), Delay: time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Charge(ctx, ChargeRequest{Amount: 1000, Currency: "XAF", Method: MethodCard})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
