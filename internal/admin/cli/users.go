package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildora/buildora/internal/admin/app"
	"github.com/buildora/buildora/pkg/adminsdk"
)

func newUsersCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse platform members",
	}

	cmd.AddCommand(newUsersListCmd(a), newSiteManagersCmd(a))
	return cmd
}

func newUsersListCmd(a *app.App) *cobra.Command {
	var params adminsdk.AllUsersParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members with search, role filter, and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.AllUsers(cmd.Context(), params)
			if err != nil {
				return err
			}

			for _, u := range resp.Result.Data {
				printUser(cmd, u)
			}
			meta := resp.Result.Meta
			fmt.Fprintf(cmd.OutOrStdout(), "page %d (limit %d), %d total\n", meta.Page, meta.Limit, meta.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "free-text filter")
	cmd.Flags().StringVar(&params.Role, "role", "", "restrict to one role")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 20, "page size")

	return cmd
}

func newSiteManagersCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "site-managers",
		Short: "List every site manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.SiteManagers(cmd.Context())
			if err != nil {
				return err
			}

			for _, u := range resp.Result {
				printUser(cmd, u)
			}
			return nil
		},
	}
}

func printUser(cmd *cobra.Command, u adminsdk.User) {
	line := fmt.Sprintf("%s\t%s <%s>\t%s", u.ID, u.UserName, u.Email, u.Role)
	if u.WorkerType != "" {
		line += "\t" + u.WorkerType
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
