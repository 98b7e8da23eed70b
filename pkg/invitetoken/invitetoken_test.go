package invitetoken

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("well-formed token", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"role":  "WORKER",
			"email": "a@b.com",
		})

		claims := Decode(raw)
		require.Equal(t, "WORKER", claims.Role)
		require.Equal(t, "a@b.com", claims.Email)
		require.Equal(t, raw, claims.Token)
		require.False(t, claims.IsZero())
	})

	t.Run("empty input", func(t *testing.T) {
		require.True(t, Decode("").IsZero())
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, raw := range []string{
			"not-a-jwt",
			"a.b",
			"a.b.c",
			"!!!.###.$$$",
			"eyJhbGciOiJIUzI1NiJ9.truncated",
		} {
			claims := Decode(raw)
			require.True(t, claims.IsZero(), "input %q should decode to zero claims", raw)
			require.Empty(t, claims.Role)
			require.Empty(t, claims.Email)
			require.Empty(t, claims.Token)
		}
	})

	t.Run("missing claims default to empty", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{"sub": "someone"})

		claims := Decode(raw)
		require.Empty(t, claims.Role)
		require.Empty(t, claims.Email)
		require.Equal(t, raw, claims.Token)
	})

	t.Run("non-string claim values default to empty", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"role":  42,
			"email": []string{"a@b.com"},
		})

		claims := Decode(raw)
		require.Empty(t, claims.Role)
		require.Empty(t, claims.Email)
		require.Equal(t, raw, claims.Token)
	})
}

func TestFromURL(t *testing.T) {
	t.Parallel()

	t.Run("token parameter present", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"role":  "SITE_MANAGER",
			"email": "manager@example.com",
		})

		claims := FromURL(context.Background(), "https://app.example.com/auth/register?token="+raw)
		require.Equal(t, "SITE_MANAGER", claims.Role)
		require.Equal(t, "manager@example.com", claims.Email)
		require.Equal(t, raw, claims.Token)
	})

	t.Run("missing token parameter", func(t *testing.T) {
		claims := FromURL(context.Background(), "https://app.example.com/auth/register")
		require.True(t, claims.IsZero())
	})

	t.Run("unparseable URL", func(t *testing.T) {
		claims := FromURL(context.Background(), "://broken")
		require.True(t, claims.IsZero())
	})
}
