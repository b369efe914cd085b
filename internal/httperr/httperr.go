// Package httperr maps REST responses onto the error categories shared by
// the Jira and Tempo clients, so callers can match with errors.Is instead
// of inspecting status codes or message text.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth covers rejected credentials (401) and forbidden access (403).
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound covers 404 responses for a requested resource.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers payloads the remote service rejected (400, 422).
	ErrValidation = errors.New("request rejected")
)

// FromResponse converts a non-success response into a taxonomy error. The
// response body is included verbatim since remote services put the useful
// detail there.
func FromResponse(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %d: %s", ErrAuth, resp.StatusCode, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %d: %s", ErrNotFound, resp.StatusCode, body)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %d: %s", ErrValidation, resp.StatusCode, body)
	default:
		return fmt.Errorf("API error %d: %s", resp.StatusCode, body)
	}
}
