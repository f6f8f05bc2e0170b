package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/fikanova/portfolio/internal/audit"
	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/contact"
	"github.com/fikanova/portfolio/internal/content"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/email"
	"github.com/fikanova/portfolio/internal/handlers"
	"github.com/fikanova/portfolio/internal/logging"
	appmiddleware "github.com/fikanova/portfolio/internal/middleware"
	"github.com/fikanova/portfolio/internal/pubsub"
	"github.com/fikanova/portfolio/internal/sanity"
	"github.com/fikanova/portfolio/internal/storage"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Site     *config.Site
	Emailer  domain.EmailSender
	Resolver *content.Resolver
	bus      *pubsub.WatermillBridge
	sanity   *sanity.Client
	contact  *contact.Service
	assets   storage.AssetStore
}

// New creates a new Server instance with all dependencies wired.
func New() *Server {
	logging.New()
	cfg := config.New()

	site, err := config.LoadSite(".")
	if err != nil {
		slog.Error("Failed to load site config", "error", err)
		os.Exit(1)
	}

	emailer, err := email.NewEmailService(cfg)
	if err != nil {
		slog.Error("Failed to initialize email service", "error", err)
		os.Exit(1)
	}

	store := sanity.NewClient(cfg)
	resolver := content.NewResolver(store, cfg.ContentTTL)

	bus := pubsub.NewWatermillBridge()
	contactService := contact.NewService(emailer, bus, cfg.ContactRecipient)

	// The audit subscriber records every submission outcome from the bus.
	auditor := audit.NewSubscriber(bus)
	if err := auditor.Start(context.Background()); err != nil {
		slog.Error("Failed to start audit subscriber", "error", err)
		os.Exit(1)
	}

	assets := storage.NewOsStore("web/assets")

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	cookies := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(cookies))

	e.Static("/static", "web/static")

	return &Server{
		E:        e,
		Cfg:      cfg,
		Site:     site,
		Emailer:  emailer,
		Resolver: resolver,
		bus:      bus,
		sanity:   store,
		contact:  contactService,
		assets:   assets,
	}
}
