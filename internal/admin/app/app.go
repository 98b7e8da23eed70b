// Package app wires configuration, logging, the session store, and the SDK
// client into one runnable application.
package app

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/buildora/buildora/internal/admin/session"
	"github.com/buildora/buildora/pkg/adminsdk"
	"github.com/buildora/buildora/pkg/slogx"
)

// Version is stamped at build time.
var Version = "dev"

// App holds the assembled application.
type App struct {
	Config   Config
	Logger   *slog.Logger
	Sessions *session.Store
	Creds    session.CredentialFile
	Client   *adminsdk.SDKClient
}

// New assembles the application: logger, session store seeded from the
// persisted credential, and the SDK client reading its Authorization
// header from the session store.
func New(cfg Config) (*App, error) {
	logger := slogx.New(slogx.Config{
		Service: "buildora-admin",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	sessions := session.NewStore()
	creds := session.CredentialFile{Path: cfg.CredentialFile}

	// A persisted credential restores the authenticated state but not the
	// identity fields; those come back with the next profile fetch.
	token, err := creds.Load()
	if err != nil {
		logger.Warn("failed to load persisted credential", slog.Any("error", err))
	} else if token != "" {
		sessions.Set(session.Session{Token: token})
	}

	client := adminsdk.NewSDKClient(cfg.BaseURL,
		adminsdk.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		adminsdk.WithTokenSource(sessions.Token),
		adminsdk.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Creds:    creds,
		Client:   client,
	}, nil
}

// Logout clears the in-memory session, the persisted credential, and every
// cached response.
func (a *App) Logout() error {
	a.Sessions.Clear()
	a.Client.Cache().Reset()
	return a.Creds.Clear()
}
