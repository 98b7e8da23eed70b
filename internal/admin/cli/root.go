// Package cli exposes the admin surface as a cobra command tree. Each
// command maps to one screen of the web front end: login, the invite
// dialog, invite-based registration, project creation and listing, and the
// member listings.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/buildora/buildora/internal/admin/app"
)

// NewRootCmd builds the buildora command tree around an assembled app.
func NewRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "buildora",
		Short:         "Buildora construction management admin CLI",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newInviteCmd(a),
		newRegisterCmd(a),
		newProjectCmd(a),
		newUsersCmd(a),
		newOTPCmd(a),
		newPasswordCmd(a),
	)

	return root
}

// cmdNotifier adapts a command's output streams to the controller
// Notifier, standing in for the web front end's toasts.
type cmdNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func notifier(cmd *cobra.Command) cmdNotifier {
	return cmdNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
}

func (n cmdNotifier) Success(msg string) {
	fmt.Fprintln(n.out, msg)
}

func (n cmdNotifier) Error(msg string) {
	fmt.Fprintln(n.errOut, "error:", msg)
}
