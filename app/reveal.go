package app

import (
	"context"
	"fmt"
)

// RevealPhone requests a client's phone number on behalf of the signed-in
// provider. The backend debits the provider's credits and records a
// PHONE_REVEAL transaction.
func (a *App) RevealPhone(ctx context.Context, targetID string) error {
	if _, err := a.Session.ProviderID(); err != nil {
		return err
	}
	reveal, err := a.API.RevealPhone(ctx, targetID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s  (-%.0f credits)\n", reveal.Phone, reveal.CreditsCharged)
	return nil
}
