package controller

import (
	"context"
	"errors"

	"github.com/buildora/buildora/pkg/adminsdk"
	"github.com/buildora/buildora/pkg/invitetoken"
)

// ErrNoInvite rejects registration when no usable invitation token was
// decoded. This gate sits in front of form validation: without an invite
// email the form cannot be submitted no matter what else is filled in.
var ErrNoInvite = errors.New("no valid invitation token")

// RegisterAPI is the slice of the SDK the registration controller needs.
type RegisterAPI interface {
	RegisterViaInvite(ctx context.Context, req adminsdk.RegisterRequest) (*adminsdk.MessageResponse, error)
}

// RegisterForm holds the editable registration fields. The email is not
// here: it comes from the invitation token and is read-only.
type RegisterForm struct {
	Name     string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterController coordinates invite-based registration. It is
// constructed from decoded invitation claims; the raw token is passed
// through to the backend, which performs the actual verification.
type RegisterController struct {
	base

	api    RegisterAPI
	claims invitetoken.Claims

	Form RegisterForm

	// OnSuccess runs after a successful registration. The web front end
	// navigates to the login screen here.
	OnSuccess func()
}

// NewRegisterController wires a registration controller for the given
// decoded invitation claims.
func NewRegisterController(api RegisterAPI, claims invitetoken.Claims, notifier Notifier) *RegisterController {
	return &RegisterController{
		base:   base{notifier: notifier},
		api:    api,
		claims: claims,
	}
}

// Email returns the invitee address the form is locked to.
func (c *RegisterController) Email() string {
	return c.claims.Email
}

// Role returns the role the invitation was issued for.
func (c *RegisterController) Role() string {
	return c.claims.Role
}

// CanSubmit reports whether a usable invitation is present. Independent of
// field validation.
func (c *RegisterController) CanSubmit() bool {
	return c.claims.Email != ""
}

// Submit redeems the invitation. Returns ErrNoInvite when no usable token
// was decoded, before any validation or network traffic.
func (c *RegisterController) Submit(ctx context.Context) error {
	if !c.CanSubmit() {
		return ErrNoInvite
	}

	if err := c.begin(); err != nil {
		return err
	}
	if err := validateForm(&c.Form); err != nil {
		return c.reject(err)
	}

	_, err := c.api.RegisterViaInvite(ctx, adminsdk.RegisterRequest{
		UserName: c.Form.Name,
		Password: c.Form.Password,
		Token:    c.claims.Token,
	})
	if err != nil {
		return c.fail(err)
	}

	c.Form = RegisterForm{}
	c.succeed("User registered successfully")
	if c.OnSuccess != nil {
		c.OnSuccess()
	}
	return nil
}
