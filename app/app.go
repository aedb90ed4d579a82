// Package app is the screen layer: thin presentation over the services,
// one file per screen. Screens fetch through the feed/services and print;
// they hold no business logic.
package app

import (
	"io"

	"bellavie/api"
	"bellavie/services/booking"
	"bellavie/services/credits"
	"bellavie/services/feed"
	"bellavie/services/geocode"
	"bellavie/services/i18n"
	"bellavie/services/session"
	"bellavie/services/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// App bundles everything the screens need. Assembled once in main.
type App struct {
	Session  *session.Session
	API      *api.Client
	Feed     *feed.Feed
	Booking  booking.BookingService
	Credits  credits.CreditsService
	Geocode  *geocode.Client
	Storage  storage.StorageService
	Bundle   *i18n.Bundle
	Validate *validator.Validate
	Out      io.Writer
	Logger   *zap.Logger
}
