// Package credits drives the provider credits dashboard: balance, ledger
// history and pack purchases.
package credits

import (
	"context"
	"fmt"

	"bellavie/api"
	"bellavie/models"
	"bellavie/services/payment"

	"go.uber.org/zap"
)

// Dashboard is the state the credits screen renders.
type Dashboard struct {
	Balance      models.CreditBalance
	Transactions []models.CreditTransaction
	Packs        []models.CreditPack
}

// CreditsService exposes the credits flows.
type CreditsService interface {
	Dashboard(ctx context.Context, providerID string) (*Dashboard, error)
	PurchasePack(ctx context.Context, providerID string, pack models.CreditPack, method payment.Method, phone string) (*models.CreditBalance, error)
}

// DefaultCreditsService implements CreditsService.
type DefaultCreditsService struct {
	API     *api.Client
	Gateway payment.Gateway
	Logger  *zap.Logger
}

// Dashboard loads the dashboard. A balance failure surfaces; a failed history
// or pack fetch degrades to an empty list so the screen still renders.
func (s *DefaultCreditsService) Dashboard(ctx context.Context, providerID string) (*Dashboard, error) {
	balance, err := s.API.GetCreditBalance(ctx, providerID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Balance: *balance}

	if txns, err := s.API.ListCreditTransactions(ctx, providerID); err != nil {
		s.Logger.Warn("credit history fetch failed, showing empty list",
			zap.String("providerID", providerID), zap.Error(err))
	} else {
		d.Transactions = txns
	}

	if packs, err := s.API.ListCreditPacks(ctx); err != nil {
		s.Logger.Warn("credit packs fetch failed", zap.Error(err))
	} else {
		d.Packs = packs
	}

	return d, nil
}

// PurchasePack runs the pack price through the payment gateway, then redeems
// the pack against the credits API with the gateway reference. phone is the
// mobile money account; card charges ignore it.
func (s *DefaultCreditsService) PurchasePack(ctx context.Context, providerID string, pack models.CreditPack, method payment.Method, phone string) (*models.CreditBalance, error) {
	receipt, err := s.Gateway.Charge(ctx, payment.ChargeRequest{
		Amount:      pack.Price,
		Currency:    "XAF",
		Method:      method,
		Description: fmt.Sprintf("credit pack %s", pack.ID),
		PhoneNumber: phone,
	})
	if err != nil {
		return nil, fmt.Errorf("credits: payment failed: %w", err)
	}

	balance, err := s.API.RedeemCreditPack(ctx, providerID, pack.ID, receipt.Reference)
	if err != nil {
		return nil, fmt.Errorf("credits: redeem failed after payment %s: %w", receipt.Reference, err)
	}
	s.Logger.Info("credit pack purchased",
		zap.String("providerID", providerID), zap.String("packID", pack.ID),
		zap.String("paymentRef", receipt.Reference))
	return balance, nil
}
