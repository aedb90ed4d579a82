package api

import (
	"context"
	"fmt"
	"net/url"

	"bellavie/models"
)

// GetCreditBalance returns the provider's current balance.
func (c *Client) GetCreditBalance(ctx context.Context, providerID string) (*models.CreditBalance, error) {
	var out models.CreditBalance
	path := fmt.Sprintf("/credits/%s/balance", url.PathEscape(providerID))
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCreditTransactions returns the provider's ledger entries, newest first.
func (c *Client) ListCreditTransactions(ctx context.Context, providerID string) ([]models.CreditTransaction, error) {
	var out []models.CreditTransaction
	path := fmt.Sprintf("/credits/%s/transactions", url.PathEscape(providerID))
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCreditPacks returns the purchasable credit packs.
func (c *Client) ListCreditPacks(ctx context.Context) ([]models.CreditPack, error) {
	var out []models.CreditPack
	if err := c.get(ctx, "/credits/packs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RedeemCreditPack credits a paid pack to the provider's balance. PaymentRef
// is the gateway reference proving payment.
func (c *Client) RedeemCreditPack(ctx context.Context, providerID, packID, paymentRef string) (*models.CreditBalance, error) {
	body := map[string]string{"pack_id": packID, "payment_ref": paymentRef}
	var out models.CreditBalance
	path := fmt.Sprintf("/credits/%s/redeem", url.PathEscape(providerID))
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
