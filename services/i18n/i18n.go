// Package i18n renders UI strings and bilingual entity fields. A Bundle is
// built once at the composition root and handed to the screens; nothing
// reads the locale from a global.
package i18n

import "strings"

// Locale is a supported UI language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
)

// ParseLocale normalises a configured locale, defaulting to French.
func ParseLocale(s string) Locale {
	if strings.HasPrefix(strings.ToLower(s), "en") {
		return LocaleEN
	}
	return LocaleFR
}

// Bundle resolves message keys and bilingual fields for one locale.
type Bundle struct {
	locale   Locale
	messages map[string]string
}

// NewBundle builds the bundle for a locale.
func NewBundle(locale Locale) *Bundle {
	msgs := messagesFR
	if locale == LocaleEN {
		msgs = messagesEN
	}
	return &Bundle{locale: locale, messages: msgs}
}

// Locale returns the bundle's locale.
func (b *Bundle) Locale() Locale { return b.locale }

// T resolves a message key; unknown keys render as the key itself so a
// missing translation is visible instead of blank.
func (b *Bundle) T(key string) string {
	if msg, ok := b.messages[key]; ok {
		return msg
	}
	return key
}

// Pick chooses between the English and French variants of an entity field,
// falling back to whichever is non-empty.
func (b *Bundle) Pick(en, fr string) string {
	if b.locale == LocaleEN {
		if en != "" {
			return en
		}
		return fr
	}
	if fr != "" {
		return fr
	}
	return en
}

var messagesEN = map[string]string{
	"booking.subtotal":       "Subtotal",
	"booking.travel_fee":     "Travel fee",
	"booking.total":          "Total",
	"booking.duration":       "Duration",
	"booking.confirmed":      "Your booking has been submitted",
	"booking.location.home":  "At home",
	"booking.location.salon": "At the salon",
	"chat.sending":           "Sending…",
	"chat.failed":            "Not delivered",
	"chat.offer.pending":     "Offer pending",
	"chat.offer.accepted":    "Offer accepted",
	"chat.offer.declined":    "Offer declined",
	"chat.offer.expired":     "Offer expired",
	"credits.balance":        "Credit balance",
	"credits.history":        "Transaction history",
	"credits.packs":          "Credit packs",
	"register.submitted":     "Registration submitted, pending verification",
	"error.network":          "Connection problem, please try again",
	"error.validation":       "Please check the highlighted fields",
	"error.auth":             "Please sign in to continue",
}

var messagesFR = map[string]string{
	"booking.subtotal":       "Sous-total",
	"booking.travel_fee":     "Frais de déplacement",
	"booking.total":          "Total",
	"booking.duration":       "Durée",
	"booking.confirmed":      "Votre réservation a été envoyée",
	"booking.location.home":  "À domicile",
	"booking.location.salon": "Au salon",
	"chat.sending":           "Envoi…",
	"chat.failed":            "Non délivré",
	"chat.offer.pending":     "Offre en attente",
	"chat.offer.accepted":    "Offre acceptée",
	"chat.offer.declined":    "Offre refusée",
	"chat.offer.expired":     "Offre expirée",
	"credits.balance":        "Solde de crédits",
	"credits.history":        "Historique des transactions",
	"credits.packs":          "Packs de crédits",
	"register.submitted":     "Inscription envoyée, en attente de vérification",
	"error.network":          "Problème de connexion, veuillez réessayer",
	"error.validation":       "Veuillez vérifier les champs indiqués",
	"error.auth":             "Veuillez vous connecter pour continuer",
}
