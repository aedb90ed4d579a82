package models

import "time"

// TransactionType tags a credit transaction.
type TransactionType string

const (
	TransactionPurchase    TransactionType = "PURCHASE"
	TransactionBonus       TransactionType = "BONUS"
	TransactionProfileView TransactionType = "PROFILE_VIEW"
	TransactionPhoneReveal TransactionType = "PHONE_REVEAL"
	TransactionRefund      TransactionType = "REFUND"
)

// CreditBalance is a provider's current credit balance.
type CreditBalance struct {
	ProviderID string    `json:"provider_id"`
	Balance    float64   `json:"balance"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreditTransaction is one signed entry in the append-only credits ledger.
// Amount is positive for purchases/bonuses, negative for spends.
type CreditTransaction struct {
	ID         string          `json:"id"`
	ProviderID string          `json:"provider_id"`
	Type       TransactionType `json:"type"`
	Amount     float64         `json:"amount"`
	Reference  string          `json:"reference,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreditPack is a purchasable bundle of credits.
type CreditPack struct {
	ID      string  `json:"id"`
	NameEn  string  `json:"name_en"`
	NameFr  string  `json:"name_fr"`
	Credits float64 `json:"credits"`
	Price   float64 `json:"price"` // XAF
	Bonus   float64 `json:"bonus,omitempty"`
}
