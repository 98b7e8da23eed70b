package adminsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a rejection from the Buildora backend. Every remote
// failure, whatever shape the response body takes, is normalized into this
// type so callers never have to poke at raw payloads.
type APIError struct {
	// StatusCode is the HTTP status of the rejected response.
	StatusCode int `json:"-"`

	// Code is the backend's machine-readable error code, when supplied.
	Code string `json:"code,omitempty"`

	// Message is a human-readable description safe to surface to a user.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// AsAPIError unwraps err into an *APIError if one is present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// ErrorMessage extracts a user-displayable message from any error returned
// by the SDK. Remote rejections yield the backend's message; anything else
// falls back to the error text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// parseAPIError turns a non-2xx response into an *APIError. The backend
// normally answers {"success":false,"message":"..."}, but the parser
// tolerates alternative and malformed shapes rather than faulting on them.
func parseAPIError(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	// Standard envelope: {"success": false, "message": "...", "errorCode": "..."}
	var envelope struct {
		Message   string `json:"message"`
		ErrorCode string `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		apiErr.Code = envelope.ErrorCode
		apiErr.Message = envelope.Message
		return apiErr
	}

	// Alternative shape some middleware layers produce: {"error": "..."}
	var alt struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &alt); err == nil && alt.Error != "" {
		apiErr.Message = alt.Error
		return apiErr
	}

	// Anything else degrades to the HTTP status.
	apiErr.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return apiErr
}
