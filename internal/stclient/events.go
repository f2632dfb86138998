package stclient

import (
	"context"
	"strconv"
)

// Events fetches all events newer than since, in ascending ID order. The
// call blocks on the daemon's long-poll window when nothing is queued, so
// it may not return for a while; cancel ctx to unblock it.
func (c *Client) Events(ctx context.Context, since uint64) ([]Event, error) {
	var events []Event

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("since", strconv.FormatUint(since, 10)).
		SetQueryParam("events", eventFilter).
		SetSuccessResult(&events).
		Get(restEvents)

	if err := handleAPIError(resp, err, "events"); err != nil {
		return nil, err
	}

	return events, nil
}
