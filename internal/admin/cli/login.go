package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildora/buildora/internal/admin/app"
	"github.com/buildora/buildora/internal/admin/controller"
)

func newLoginCmd(a *app.App) *cobra.Command {
	var form controller.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Buildora backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewLoginController(a.Client, a.Sessions, a.Creds, notifier(cmd))
			c.Form = form
			return c.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session and persisted credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.Profile(cmd.Context())
			if err != nil {
				return err
			}

			user := resp.Result
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.UserName, user.Email, user.Role)
			return nil
		},
	}
}
