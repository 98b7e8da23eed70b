package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildora/buildora/internal/admin/app"
	"github.com/buildora/buildora/internal/admin/controller"
	"github.com/buildora/buildora/pkg/adminsdk"
	"github.com/buildora/buildora/pkg/invitetoken"
)

func newInviteCmd(a *app.App) *cobra.Command {
	var form controller.InviteForm

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Send a membership invitation",
		Long: "Send an invitation to a new site manager or worker. Worker invites\n" +
			"must name one of the trades: " + strings.Join(adminsdk.WorkerTypes, ", ") + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewInviteController(a.Client, notifier(cmd))
			c.Form = form
			return c.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "invitee email address")
	cmd.Flags().StringVar(&form.Role, "role", "", "role to invite as (SITE_MANAGER or WORKER)")
	cmd.Flags().StringVar(&form.WorkerType, "worker-type", "", "trade, required for WORKER invites")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newRegisterCmd(a *app.App) *cobra.Command {
	var (
		inviteURL string
		token     string
		form      controller.RegisterForm
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Redeem an invitation and create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			claims := invitetoken.DecodeContext(ctx, token)
			if inviteURL != "" {
				claims = invitetoken.FromURL(ctx, inviteURL)
			}

			c := controller.NewRegisterController(a.Client, claims, notifier(cmd))
			c.Form = form
			return c.Submit(ctx)
		},
	}

	cmd.Flags().StringVar(&inviteURL, "invite-url", "", "registration link from the invitation email")
	cmd.Flags().StringVar(&token, "token", "", "raw invitation token")
	cmd.Flags().StringVar(&form.Name, "name", "", "display name")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	cmd.MarkFlagsOneRequired("invite-url", "token")
	cmd.MarkFlagsMutuallyExclusive("invite-url", "token")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
