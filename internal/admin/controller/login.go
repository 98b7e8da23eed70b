package controller

import (
	"context"
	"log/slog"

	"github.com/buildora/buildora/internal/admin/session"
	"github.com/buildora/buildora/pkg/adminsdk"
	"github.com/buildora/buildora/pkg/slogx"
)

// LoginAPI is the slice of the SDK the login controller needs.
type LoginAPI interface {
	Login(ctx context.Context, req adminsdk.LoginRequest) (*adminsdk.LoginResponse, error)
}

// CredentialWriter persists the access credential on login success.
type CredentialWriter interface {
	Save(token string) error
}

// LoginForm holds the login screen's fields.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginController coordinates the login flow: validate, submit, write the
// session store and persist the credential on success.
type LoginController struct {
	base

	api      LoginAPI
	sessions *session.Store
	creds    CredentialWriter

	Form LoginForm

	// OnSuccess runs after a successful login, once the session is
	// written. The web front end navigates home here.
	OnSuccess func()
}

// NewLoginController wires a login controller.
func NewLoginController(api LoginAPI, sessions *session.Store, creds CredentialWriter, notifier Notifier) *LoginController {
	return &LoginController{
		base:     base{notifier: notifier},
		api:      api,
		sessions: sessions,
		creds:    creds,
	}
}

// Submit validates the form and performs the login. On rejection the
// session store is left untouched and the form keeps its values.
func (c *LoginController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	if err := validateForm(&c.Form); err != nil {
		return c.reject(err)
	}

	resp, err := c.api.Login(ctx, adminsdk.LoginRequest{
		Email:    c.Form.Email,
		Password: c.Form.Password,
	})
	if err != nil {
		return c.fail(err)
	}

	c.sessions.Set(session.Session{
		Name:  resp.Result.Name,
		Email: resp.Result.Email,
		Role:  resp.Result.Role,
		Token: resp.Result.AccessToken,
	})
	if err := c.creds.Save(resp.Result.AccessToken); err != nil {
		// The in-memory session is live either way; only persistence
		// across invocations is affected.
		slogx.FromContext(ctx).Warn("failed to persist credential", slog.Any("error", err))
	}

	c.Form = LoginForm{}
	c.succeed("Logged in successfully")
	if c.OnSuccess != nil {
		c.OnSuccess()
	}
	return nil
}
