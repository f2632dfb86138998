package stclient

import (
	"errors"
	"fmt"

	"github.com/imroc/req/v3"
)

var (
	ErrNoAPIKey  = errors.New("stclient: api key missing")
	ErrNoBaseURL = errors.New("stclient: base url missing")

	// ErrUnknownEventType is returned when the daemon sends an event kind
	// outside the subscribed set.
	ErrUnknownEventType = errors.New("stclient: unknown event type")
)

// handleAPIError is a helper function that handles the common error pattern.
// The daemon reports failures as plain non-2xx responses, so there is no
// error body to decode.
func handleAPIError(resp *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s %w", operation, requestErr)
	}

	if resp.IsErrorState() {
		return fmt.Errorf("api error: %s %s", operation, resp.Status)
	}

	return nil
}
