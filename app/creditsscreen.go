package app

import (
	"context"
	"fmt"

	"bellavie/models"
	"bellavie/services/payment"
	"bellavie/utils"
)

// CreditsDashboard renders the provider credits screen. The provider id
// comes from the session; an account without a contractor profile gets
// session.ErrNoSession here.
func (a *App) CreditsDashboard(ctx context.Context) error {
	providerID, err := a.Session.ProviderID()
	if err != nil {
		return err
	}

	d, err := a.Credits.Dashboard(ctx, providerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s: %.0f\n", a.Bundle.T("credits.balance"), d.Balance.Balance)

	fmt.Fprintf(a.Out, "\n%s:\n", a.Bundle.T("credits.history"))
	for _, t := range d.Transactions {
		fmt.Fprintf(a.Out, "  %s %-14s %+8.0f  %s\n",
			t.CreatedAt.Format("2006-01-02"), t.Type, t.Amount, t.Reference)
	}

	fmt.Fprintf(a.Out, "\n%s:\n", a.Bundle.T("credits.packs"))
	for _, p := range d.Packs {
		fmt.Fprintf(a.Out, "  %-12s %-24s %6.0f credits  %s\n",
			p.ID, a.Bundle.Pick(p.NameEn, p.NameFr), p.Credits+p.Bonus, utils.FormatXAF(p.Price))
	}
	return nil
}

// BuyCredits purchases a credit pack for the signed-in provider and prints
// the new balance. phone is only needed for mobile money.
func (a *App) BuyCredits(ctx context.Context, packID string, method payment.Method, phone string) error {
	providerID, err := a.Session.ProviderID()
	if err != nil {
		return err
	}

	packs, err := a.API.ListCreditPacks(ctx)
	if err != nil {
		return err
	}
	var pack *models.CreditPack
	for i := range packs {
		if packs[i].ID == packID {
			pack = &packs[i]
			break
		}
	}
	if pack == nil {
		return fmt.Errorf("unknown credit pack %q", packID)
	}

	balance, err := a.Credits.PurchasePack(ctx, providerID, *pack, method, phone)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s: %.0f\n", a.Bundle.T("credits.balance"), balance.Balance)
	return nil
}
