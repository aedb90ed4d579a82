// Package payment is the gateway integration point. The real mobile-money /
// card gateway is not wired yet; SimulatedGateway stands in and fabricates a
// successful receipt so the surrounding flows can be built and tested.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Method is the payment instrument.
type Method string

const (
	MethodMobileMoney Method = "mobile_money"
	MethodCard        Method = "card"
)

// ChargeRequest describes one charge.
type ChargeRequest struct {
	Amount      float64
	Currency    string
	Method      Method
	Description string
	// PhoneNumber is required for mobile money charges.
	PhoneNumber string
}

// Receipt is the gateway's proof of payment.
type Receipt struct {
	Reference string
	Amount    float64
	Currency  string
	Method    Method
	Status    string
	CreatedAt time.Time
}

// Gateway charges the user through an external payment provider.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

// SimulatedGateway validates the request and reports success after a short
// delay. No money moves.
type SimulatedGateway struct {
	Logger *zap.Logger
	// Delay defaults to one second, mimicking gateway latency.
	Delay time.Duration
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	if err := validate(req); err != nil {
		return nil, fmt.Errorf("payment: invalid charge request: %w", err)
	}

	delay := g.Delay
	if delay == 0 {
		delay = time.Second
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(delay):
	}

	receipt := &Receipt{
		Reference: "sim_" + uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "paid",
		CreatedAt: time.Now(),
	}
	g.Logger.Info("simulated payment succeeded",
		zap.String("reference", receipt.Reference),
		zap.Float64("amount", req.Amount), zap.String("method", string(req.Method)))
	return receipt, nil
}

func validate(req ChargeRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	switch req.Method {
	case MethodMobileMoney:
		if req.PhoneNumber == "" {
			return errors.New("mobile money needs a phone number")
		}
	case MethodCard:
	default:
		return fmt.Errorf("unsupported method: %s", req.Method)
	}
	return nil
}
