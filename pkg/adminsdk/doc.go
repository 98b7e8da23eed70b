/*
Package adminsdk provides a typed client for the Buildora construction
management backend.

# Overview

The SDK exposes one method per remote operation the admin surface uses:
authentication, invitation issuance and redemption, the OTP and password
lifecycle, profile management, and project creation and listing. Every method
takes a context, returns a typed response, and surfaces remote rejections as
a *APIError carrying the backend's human-readable message. The SDK performs
no retries; every failure is reported verbatim to the caller.

Create a client with the backend base URL:

	client := adminsdk.NewSDKClient("https://api.buildora.example",
		adminsdk.WithTokenSource(sessions.Token),
	)

	// Authenticate
	resp, err := client.Login(ctx, adminsdk.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})

	// Invite a worker
	_, err = client.SendInvite(ctx, adminsdk.InviteRequest{
		Email:      "new@example.com",
		Role:       adminsdk.RoleWorker,
		WorkerType: adminsdk.WorkerTypePlumber,
	})

# Authentication

A TokenSource supplies the access credential for authenticated calls. When it
yields a non-empty token the SDK sets it as the Authorization header. The one
exception is ResetPassword, which carries its own reset credential and
overrides the header for that single call.

# Response caching

Read operations are grouped into invalidation tags (users, projects,
availability). A query's decoded payload is cached under the tags it
provides and served from cache on repeat until a mutation invalidates one of
those tags, at which point the next query refetches from the backend. The
TagCache is exposed via Cache() so callers can subscribe to invalidations or
reset it wholesale on logout.

# Error handling

Remote rejections come back as *APIError with the HTTP status, a machine
code when the backend supplies one, and a message safe to show a user. The
parser tolerates unexpected response shapes: a body without the expected
message field degrades to a generic message rather than a fault. Use
ErrorMessage to pull a displayable string out of any error.
*/
package adminsdk
