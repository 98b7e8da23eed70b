package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/buildora/buildora/pkg/idx"
	"github.com/buildora/buildora/pkg/slogx"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs one HTTP request against the backend. Every request
// carries an X-Request-Id for log correlation; authenticated requests carry
// the token source's credential unless the caller overrides the
// Authorization header (password reset does).
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqID := idx.New().String()
	ctx = slogx.WithRequestID(ctx, reqID)

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-Id", reqID)
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	slogx.FromContext(ctx).Debug("api request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// sendJSON marshals body, performs the request, and decodes the response
// into target. On success it invalidates the given cache tags.
func (c *SDKClient) sendJSON(
	ctx context.Context,
	method, path string,
	body any,
	headers map[string]string,
	target any,
	invalidates ...Tag,
) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"

	resp, err := c.doRequest(ctx, method, path, bytes.NewReader(payload), headers)
	if err != nil {
		return err
	}

	if err := decodeJSON(resp, target); err != nil {
		return err
	}

	if len(invalidates) > 0 {
		c.cache.Invalidate(invalidates...)
	}
	return nil
}

// cachedGet serves a query from the tag cache when possible, otherwise
// fetches it and caches the raw payload under the tags it provides.
func (c *SDKClient) cachedGet(
	ctx context.Context,
	path string,
	query url.Values,
	target any,
	provides ...Tag,
) error {
	key := cacheKey(path, query)

	if raw, ok := c.cache.Get(key); ok {
		slogx.FromContext(ctx).Debug("cache hit", slog.String("key", key))
		return json.Unmarshal(raw, target)
	}

	requestPath := path
	if len(query) > 0 {
		requestPath += "?" + query.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, requestPath, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.cache.Put(key, body, provides...)
	return nil
}

// decodeJSON decodes a JSON response into target, normalizing non-2xx
// responses into a typed *APIError.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp, body)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// buildMultipart assembles a multipart body holding a JSON metadata field
// and an optional file attachment. It returns the body and the content type
// carrying the boundary.
func buildMultipart(
	metaField string, meta any,
	fileField, filename string, file io.Reader,
) (io.Reader, string, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode metadata: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField(metaField, string(payload)); err != nil {
		return nil, "", fmt.Errorf("failed to write metadata field: %w", err)
	}

	if file != nil {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file field: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", fmt.Errorf("failed to write file field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
