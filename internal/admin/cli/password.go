package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildora/buildora/internal/admin/app"
	"github.com/buildora/buildora/pkg/adminsdk"
)

func newOTPCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "One-time passcode lifecycle",
	}

	var email string
	send := &cobra.Command{
		Use:   "send",
		Short: "Email a one-time passcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.SendOTP(cmd.Context(), adminsdk.OTPRequest{Email: email})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
	send.Flags().StringVar(&email, "email", "", "account email")
	_ = send.MarkFlagRequired("email")

	var resendEmail string
	resend := &cobra.Command{
		Use:   "resend",
		Short: "Re-issue a pending passcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.ResendOTP(cmd.Context(), adminsdk.OTPRequest{Email: resendEmail})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
	resend.Flags().StringVar(&resendEmail, "email", "", "account email")
	_ = resend.MarkFlagRequired("email")

	var (
		verifyEmail string
		code        string
	)
	verify := &cobra.Command{
		Use:   "verify",
		Short: "Verify an emailed passcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.VerifyOTP(cmd.Context(), adminsdk.VerifyOTPRequest{Email: verifyEmail, OTP: code})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
	verify.Flags().StringVar(&verifyEmail, "email", "", "account email")
	verify.Flags().StringVar(&code, "code", "", "passcode from the email")
	_ = verify.MarkFlagRequired("email")
	_ = verify.MarkFlagRequired("code")

	cmd.AddCommand(send, resend, verify)
	return cmd
}

func newPasswordCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Reset or change the account password",
	}

	var (
		resetToken string
		password   string
	)
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password using a reset credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.ResetPassword(cmd.Context(), resetToken, adminsdk.ResetPasswordRequest{Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
	reset.Flags().StringVar(&resetToken, "token", "", "reset credential from the email")
	reset.Flags().StringVar(&password, "new-password", "", "new password")
	_ = reset.MarkFlagRequired("token")
	_ = reset.MarkFlagRequired("new-password")

	var newPassword string
	change := &cobra.Command{
		Use:   "change",
		Short: "Change the authenticated user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.ChangePassword(cmd.Context(), adminsdk.ChangePasswordRequest{NewPassword: newPassword})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
	change.Flags().StringVar(&newPassword, "new-password", "", "new password")
	_ = change.MarkFlagRequired("new-password")

	cmd.AddCommand(reset, change)
	return cmd
}
