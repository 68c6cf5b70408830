package telegram

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSetNotFound means the sticker set does not exist on the remote.
	// This is a valid state for sets that have not been pushed yet.
	ErrSetNotFound = errors.New("sticker set not found")
	// ErrUnauthorized means the bot token was rejected by the API.
	ErrUnauthorized = errors.New("bot token rejected")
)

// APIError is a Bot API response with ok=false that maps to no sentinel.
type APIError struct {
	// Code is the error_code field of the response.
	Code int
	// Description is the API's error description, surfaced verbatim.
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// mapAPIError translates an ok=false response into a typed error. This is
// the single place where provider error text is inspected; everything above
// the client matches sentinels with errors.Is.
func mapAPIError(code int, description string) error {
	switch {
	case strings.Contains(description, "STICKERSET_INVALID"):
		return fmt.Errorf("%w: %s", ErrSetNotFound, description)
	case code == 401 || code == 404:
		return fmt.Errorf("%w: %s", ErrUnauthorized, description)
	default:
		return &APIError{Code: code, Description: description}
	}
}
