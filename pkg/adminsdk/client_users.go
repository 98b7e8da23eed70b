package adminsdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// SendInvite asks the backend to email an invitation to a prospective
// member. Sends are not idempotent; repeating the call issues another
// invitation.
func (c *SDKClient) SendInvite(ctx context.Context, req InviteRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/users/send-invite", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterViaInvite redeems an invitation token to create an account. The
// backend verifies the token; an invalid or expired one rejects the call.
func (c *SDKClient) RegisterViaInvite(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/users/register-via-invite", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile returns the authenticated user's profile.
// Provides: users, availability
func (c *SDKClient) Profile(ctx context.Context) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := c.cachedGet(ctx, "/user/profile", nil, &resp, TagUsers, TagAvailability); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AllUsers returns one page of the member listing, filtered by free-text
// search and role.
// Provides: users
func (c *SDKClient) AllUsers(ctx context.Context, params AllUsersParams) (*UsersResponse, error) {
	query := url.Values{
		"search": {params.Search},
		"role":   {params.Role},
		"page":   {strconv.Itoa(params.Page)},
		"limit":  {strconv.Itoa(params.Limit)},
	}

	var resp UsersResponse
	if err := c.cachedGet(ctx, "/analysis/all-users", query, &resp, TagUsers); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SiteManagers returns every site manager, unfiltered and unpaginated.
// Provides: users
func (c *SDKClient) SiteManagers(ctx context.Context) (*SiteManagersResponse, error) {
	var resp SiteManagersResponse
	if err := c.cachedGet(ctx, "/users/site-managers", nil, &resp, TagUsers); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile updates the authenticated user's profile fields.
// Invalidates: users
func (c *SDKClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPut, "/auth/update", req, nil, &resp, TagUsers); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateImage points the profile at an already-hosted image URL.
// Invalidates: users
func (c *SDKClient) UpdateImage(ctx context.Context, req UpdateImageRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPut, "/users/update/profileImage", req, nil, &resp, TagUsers); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadProfileImage uploads a new profile image as a multipart attachment.
// Invalidates: users
func (c *SDKClient) UploadProfileImage(ctx context.Context, filename string, image io.Reader) (*MessageResponse, error) {
	body, contentType, err := buildMultipart("bodyData", struct{}{}, "fileUrl", filename, image)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type": contentType,
	}

	resp, err := c.doRequest(ctx, http.MethodPut, "/auth/upload/profileImage", body, headers)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg); err != nil {
		return nil, err
	}

	c.cache.Invalidate(TagUsers)
	return &msg, nil
}
