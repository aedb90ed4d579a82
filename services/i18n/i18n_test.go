package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleEN, ParseLocale("en-CM"))
	assert.Equal(t, LocaleFR, ParseLocale("fr"))
	assert.Equal(t, LocaleFR, ParseLocale(""))
	assert.Equal(t, LocaleFR, ParseLocale("de"))
}

func TestPickPrefersLocaleVariant(t *testing.T) {
	fr := NewBundle(LocaleFR)
	en := NewBundle(LocaleEN)

	assert.Equal(t, "Coiffure", fr.Pick("Hairdressing", "Coiffure"))
	assert.Equal(t, "Hairdressing", en.Pick("Hairdressing", "Coiffure"))
}

func TestPickFallsBackToNonEmpty(t *testing.T) {
	fr := NewBundle(LocaleFR)
	en := NewBundle(LocaleEN)

	assert.Equal(t, "Hairdressing", fr.Pick("Hairdressing", ""))
	assert.Equal(t, "Coiffure", en.Pick("", "Coiffure"))
	assert.Equal(t, "", fr.Pick("", ""))
}

func TestTUnknownKeyRendersKey(t *testing.T) {
	b := NewBundle(LocaleFR)
	assert.Equal(t, "booking.nope", b.T("booking.nope"))
}

func TestMessageCatalogsCoverSameKeys(t *testing.T) {
	for key := range messagesEN {
		_, ok := messagesFR[key]
		assert.True(t, ok, "missing FR translation for %s", key)
	}
	for key := range messagesFR {
		_, ok := messagesEN[key]
		assert.True(t, ok, "missing EN translation for %s", key)
	}
}
