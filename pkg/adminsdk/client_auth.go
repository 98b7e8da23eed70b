package adminsdk

import (
	"context"
	"net/http"
)

// Login authenticates with email and password and returns the identity and
// access credential the backend issues. The SDK does not store the
// credential; wiring it into a session is the caller's responsibility.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendOTP asks the backend to email a one-time passcode to the account.
// No passcode state is retained client-side.
func (c *SDKClient) SendOTP(ctx context.Context, req OTPRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/send-otp", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResendOTP re-issues a pending one-time passcode.
func (c *SDKClient) ResendOTP(ctx context.Context, req OTPRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/user/resend-otp", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP submits an emailed passcode for verification.
func (c *SDKClient) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/verify-otp", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword sets a new password using a reset credential. The reset
// credential overrides the Authorization header for this one call, replacing
// whatever the token source would supply.
func (c *SDKClient) ResetPassword(ctx context.Context, resetToken string, req ResetPasswordRequest) (*MessageResponse, error) {
	headers := map[string]string{
		"Authorization": resetToken,
	}

	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPatch, "/auth/reset-password", req, headers, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword sets a new password for the authenticated user.
func (c *SDKClient) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPatch, "/auth/reset-password", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
