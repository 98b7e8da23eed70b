// Package invitetoken extracts the role and email claims Buildora embeds in
// an invitation token.
//
// The token arrives as a "token" query parameter on the registration deep
// link. Decoding is deliberately lenient: no signature verification happens
// here, and any malformed input degrades to zero-value claims instead of an
// error. The backend re-validates the token when the registration request is
// submitted, so a forged token buys nothing beyond a pre-filled form.
package invitetoken

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/golang-jwt/jwt/v5"

	"github.com/buildora/buildora/pkg/slogx"
)

// Claims are the fields carried by an invitation token.
type Claims struct {
	// Role the invitee will be registered with (e.g. "WORKER", "SITE_MANAGER").
	Role string

	// Email the invitation was issued for. An empty Email means no usable
	// invitation is present and registration must stay disabled.
	Email string

	// Token is the raw token string, passed through unchanged on the
	// registration call so the backend can verify it.
	Token string
}

// IsZero reports whether no usable claims were decoded.
func (c Claims) IsZero() bool {
	return c == Claims{}
}

// Decode parses raw as an unverified JWT and extracts the invitation claims.
// It never fails: absent or malformed input yields zero-value Claims.
func Decode(raw string) Claims {
	return DecodeContext(context.Background(), raw)
}

// DecodeContext is Decode with a contextual logger for the diagnostic on
// malformed input.
func DecodeContext(ctx context.Context, raw string) Claims {
	if raw == "" {
		return Claims{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		slogx.FromContext(ctx).Debug("invalid invite token", slog.Any("error", err))
		return Claims{}
	}

	return Claims{
		Role:  stringClaim(claims, "role"),
		Email: stringClaim(claims, "email"),
		Token: raw,
	}
}

// FromURL pulls the "token" query parameter out of a registration link and
// decodes it. An unparseable URL or missing parameter yields zero Claims.
func FromURL(ctx context.Context, rawURL string) Claims {
	u, err := url.Parse(rawURL)
	if err != nil {
		slogx.FromContext(ctx).Debug("invalid registration link", slog.Any("error", err))
		return Claims{}
	}

	return DecodeContext(ctx, u.Query().Get("token"))
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
