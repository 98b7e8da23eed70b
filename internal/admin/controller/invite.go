package controller

import (
	"context"

	"github.com/buildora/buildora/pkg/adminsdk"
)

// InviteAPI is the slice of the SDK the invite controller needs.
type InviteAPI interface {
	SendInvite(ctx context.Context, req adminsdk.InviteRequest) (*adminsdk.MessageResponse, error)
}

// InviteForm holds the invite dialog's fields. WorkerType is required
// exactly when Role is WORKER and must name one of the known trades.
type InviteForm struct {
	Email      string `validate:"required,email"`
	Role       string `validate:"required,oneof=SITE_MANAGER WORKER"`
	WorkerType string `validate:"required_if=Role WORKER,omitempty,oneof=Plumber Electrician Carpenter Painter Cleaner Mechanic HVAC_Technician Mason Welder"`
}

// InviteController coordinates the invite-member dialog. Invitations are
// not idempotent; submitting twice sends two invitations.
type InviteController struct {
	base

	api InviteAPI

	Form InviteForm

	// OnSuccess runs after a successful send. The web front end closes
	// the dialog here.
	OnSuccess func()
}

// NewInviteController wires an invite controller.
func NewInviteController(api InviteAPI, notifier Notifier) *InviteController {
	return &InviteController{
		base: base{notifier: notifier},
		api:  api,
	}
}

// Submit validates the form and sends the invitation. WorkerType is only
// transmitted for worker invites, even if a value is lingering from a
// previous role selection.
func (c *InviteController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	if err := validateForm(&c.Form); err != nil {
		return c.reject(err)
	}

	req := adminsdk.InviteRequest{
		Email: c.Form.Email,
		Role:  c.Form.Role,
	}
	if c.Form.Role == adminsdk.RoleWorker {
		req.WorkerType = c.Form.WorkerType
	}

	resp, err := c.api.SendInvite(ctx, req)
	if err != nil {
		return c.fail(err)
	}

	c.Form = InviteForm{}
	c.succeed(orDefault(resp.Message, "Invitation sent successfully"))
	if c.OnSuccess != nil {
		c.OnSuccess()
	}
	return nil
}
