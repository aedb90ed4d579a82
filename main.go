// File: bellavie/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bellavie/api"
	"bellavie/app"
	"bellavie/config"
	"bellavie/middleware"
	"bellavie/models"
	"bellavie/services/booking"
	"bellavie/services/credits"
	"bellavie/services/feed"
	"bellavie/services/geocode"
	"bellavie/services/i18n"
	"bellavie/services/payment"
	"bellavie/services/session"
	"bellavie/services/storage"
	"bellavie/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	sess := session.New()
	if tok := os.Getenv("BELLAVIE_TOKEN"); tok != "" {
		if err := sess.Accept(tok, os.Getenv("BELLAVIE_USER_ID"), os.Getenv("BELLAVIE_PROVIDER_ID")); err != nil {
			logger.Sugar().Fatalf("main: invalid session token: %v", err)
		}
	}

	// HTTP clients. The API and storage share the authenticated transport;
	// the geocoding client gets its own with the mandatory User-Agent and a
	// one-request-per-second limit.
	apiHTTP := &http.Client{
		Timeout: config.AppConfig.APITimeout,
		Transport: middleware.Chain(nil,
			middleware.RequestLogger(logger),
			middleware.BearerAuth(sess),
		),
	}
	geoHTTP := &http.Client{
		Timeout: config.AppConfig.APITimeout,
		Transport: middleware.Chain(nil,
			middleware.RequestLogger(logger),
			middleware.UserAgent(config.AppConfig.GeocodeUserAgent),
			middleware.RateLimit(rate.NewLimiter(rate.Every(time.Second), 1)),
		),
	}

	apiClient := api.NewClient(config.AppConfig.APIBaseURL, apiHTTP)

	slotSource := &booking.FallbackSlotSource{
		Source:   &booking.APISlotSource{API: apiClient},
		Fallback: booking.DefaultSlotFallback{},
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		API:       apiClient,
		SlotsFrom: slotSource,
		TravelFee: config.AppConfig.HomeTravelFee,
	}
	creditsService := &credits.DefaultCreditsService{
		API:     apiClient,
		Gateway: &payment.SimulatedGateway{Logger: logger},
		Logger:  logger,
	}

	a := &app.App{
		Session:  sess,
		API:      apiClient,
		Feed:     feed.New(apiClient, logger),
		Booking:  bookingService,
		Credits:  creditsService,
		Geocode:  geocode.NewClient(config.AppConfig.GeocodeBaseURL, geoHTTP),
		Storage:  storage.NewBucketStorage(config.AppConfig.StorageURL, config.AppConfig.StorageBucket, apiHTTP),
		Bundle:   i18n.NewBundle(i18n.ParseLocale(config.AppConfig.Locale)),
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Out:      os.Stdout,
		Logger:   logger,
	}

	// Cancel everything (in-flight fetches, chat workers) on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, a, os.Args[1:]); err != nil {
		logger.Sugar().Errorf("main: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bellavie <categories|services|providers|book|bookings|chat|offers|credits|profile|packages|reveal|register|geocode>")
	}

	switch args[0] {
	case "categories":
		return a.Categories(ctx)

	case "services":
		fs := flag.NewFlagSet("services", flag.ExitOnError)
		category := fs.String("category", "", "category id")
		fs.Parse(args[1:])
		return a.Services(ctx, *category)

	case "providers":
		fs := flag.NewFlagSet("providers", flag.ExitOnError)
		service := fs.String("service", "", "service id")
		city := fs.String("city", "", "city filter")
		fs.Parse(args[1:])
		return a.Providers(ctx, *service, *city)

	case "book":
		fs := flag.NewFlagSet("book", flag.ExitOnError)
		provider := fs.String("provider", "", "provider id")
		kind := fs.String("kind", "therapist", "therapist or salon")
		primary := fs.String("service", "", "primary service id")
		extras := fs.String("extras", "", "comma-separated additional service ids")
		home := fs.Bool("home", false, "home visit")
		address := fs.String("address", "", "home visit address")
		date := fs.String("date", "", "date (2006-01-02)")
		slot := fs.String("slot", "", "slot (HH:MM); omit to list slots")
		notes := fs.String("notes", "", "notes for the provider")
		fs.Parse(args[1:])

		location := models.LocationSalon
		if *home {
			location = models.LocationHome
		}
		var additional []string
		if *extras != "" {
			additional = strings.Split(*extras, ",")
		}
		return a.BookingFlow(ctx, app.BookingFlowParams{
			ProviderID:   *provider,
			ProviderKind: models.ProviderKind(*kind),
			PrimaryID:    *primary,
			AdditionalID: additional,
			Location:     location,
			Address:      *address,
			Date:         *date,
			Slot:         *slot,
			Notes:        *notes,
		})

	case "bookings":
		fs := flag.NewFlagSet("bookings", flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		fs.Parse(args[1:])
		return a.MyBookings(ctx, models.BookingStatus(*status))

	case "chat":
		fs := flag.NewFlagSet("chat", flag.ExitOnError)
		provider := fs.String("provider", "", "provider id")
		message := fs.String("message", "", "message to send")
		follow := fs.Bool("follow", false, "stay open and print incoming messages")
		poll := fs.Bool("poll", false, "use interval polling instead of the realtime channel")
		fs.Parse(args[1:])
		return a.ChatScreen(ctx, app.ChatScreenParams{
			ProviderID: *provider,
			Message:    *message,
			Realtime:   !*poll,
			Follow:     *follow,
		})

	case "credits":
		fs := flag.NewFlagSet("credits", flag.ExitOnError)
		buy := fs.String("buy", "", "credit pack id to purchase")
		method := fs.String("method", string(payment.MethodMobileMoney), "payment method: mobile_money or card")
		phone := fs.String("phone", "", "mobile money phone (+237...)")
		fs.Parse(args[1:])
		if *buy != "" {
			return a.BuyCredits(ctx, *buy, payment.Method(*method), *phone)
		}
		return a.CreditsDashboard(ctx)

	case "offers":
		fs := flag.NewFlagSet("offers", flag.ExitOnError)
		provider := fs.String("provider", "", "provider id")
		respond := fs.String("respond", "", "offer id to answer")
		decline := fs.Bool("decline", false, "decline instead of accept")
		fs.Parse(args[1:])
		return a.Offers(ctx, app.OffersParams{
			ProviderID: *provider,
			RespondID:  *respond,
			Accept:     !*decline,
		})

	case "reveal":
		fs := flag.NewFlagSet("reveal", flag.ExitOnError)
		target := fs.String("user", "", "user id whose phone to reveal")
		fs.Parse(args[1:])
		return a.RevealPhone(ctx, *target)

	case "packages":
		fs := flag.NewFlagSet("packages", flag.ExitOnError)
		add := fs.Bool("add", false, "create a package")
		update := fs.String("update", "", "package id to replace")
		remove := fs.String("delete", "", "package id to delete")
		nameEn := fs.String("name-en", "", "package name (English)")
		nameFr := fs.String("name-fr", "", "package name (French)")
		services := fs.String("services", "", "comma-separated service ids")
		price := fs.Float64("price", 0, "package price (XAF)")
		duration := fs.Int("duration", 0, "package duration (minutes)")
		fs.Parse(args[1:])

		switch {
		case *remove != "":
			return a.RemovePackage(ctx, *remove)
		case *add, *update != "":
			in := models.PackageInput{
				NameEn:   *nameEn,
				NameFr:   *nameFr,
				Price:    *price,
				Duration: *duration,
			}
			if *services != "" {
				in.ServiceIDs = strings.Split(*services, ",")
			}
			if *update != "" {
				return a.ReplacePackage(ctx, *update, in)
			}
			return a.AddPackage(ctx, in)
		default:
			return a.ListPackages(ctx)
		}

	case "profile":
		fs := flag.NewFlagSet("profile", flag.ExitOnError)
		name := fs.String("name", "", "new display name")
		bio := fs.String("bio", "", "new bio")
		city := fs.String("city", "", "new city")
		fs.Parse(args[1:])
		if *name != "" || *bio != "" || *city != "" {
			return a.UpdateProfile(ctx, models.ProfileUpdate{
				DisplayName: *name,
				Bio:         *bio,
				City:        *city,
			})
		}
		return a.Profile(ctx)

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		kind := fs.String("kind", "therapist", "therapist or salon")
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email")
		phone := fs.String("phone", "", "phone (+237...)")
		city := fs.String("city", "", "city")
		region := fs.String("region", "", "region")
		address := fs.String("address", "", "salon address")
		homeVisits := fs.Bool("home-visits", false, "offers home visits")
		docs := fs.String("docs", "", "comma-separated ID document files")
		fs.Parse(args[1:])

		var docFiles []string
		if *docs != "" {
			docFiles = strings.Split(*docs, ",")
		}
		return a.RegisterContractor(ctx, models.ContractorRegistration{
			Kind:        models.ProviderKind(*kind),
			DisplayName: *name,
			Email:       *email,
			Phone:       *phone,
			City:        *city,
			Region:      *region,
			Address:     *address,
			HomeVisits:  *homeVisits,
		}, docFiles)

	case "geocode":
		fs := flag.NewFlagSet("geocode", flag.ExitOnError)
		query := fs.String("q", "", "address query")
		lat := fs.Float64("lat", 0, "latitude for reverse lookup")
		lon := fs.Float64("lon", 0, "longitude for reverse lookup")
		fs.Parse(args[1:])
		if *query != "" {
			return a.AddressSearch(ctx, *query)
		}
		return a.WhereAmI(ctx, *lat, *lon)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
