package adminsdk

import (
	"context"
	"io"
	"net/http"
)

// CreateProject creates a construction project. The metadata travels as a
// JSON-encoded "bodyData" multipart field; image may be nil, otherwise it is
// attached under "fileUrl".
// Invalidates: projects
func (c *SDKClient) CreateProject(
	ctx context.Context,
	req CreateProjectRequest,
	filename string,
	image io.Reader,
) (*CreateProjectResponse, error) {
	body, contentType, err := buildMultipart("bodyData", req, "fileUrl", filename, image)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type": contentType,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/project/create", body, headers)
	if err != nil {
		return nil, err
	}

	var created CreateProjectResponse
	if err := decodeJSON(resp, &created); err != nil {
		return nil, err
	}

	c.cache.Invalidate(TagProjects)
	return &created, nil
}

// AllProjects returns every project.
// Provides: projects
func (c *SDKClient) AllProjects(ctx context.Context) (*ProjectsResponse, error) {
	var resp ProjectsResponse
	if err := c.cachedGet(ctx, "/project/all", nil, &resp, TagProjects); err != nil {
		return nil, err
	}
	return &resp, nil
}
