package stclient

import (
	"context"
)

// Connections fetches the current connection state of every device the
// daemon knows about.
func (c *Client) Connections(ctx context.Context) (*ConnectionsResponse, error) {
	var connections *ConnectionsResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetSuccessResult(&connections).
		Get(restConnections)

	if err := handleAPIError(resp, err, "connections"); err != nil {
		return nil, err
	}

	return connections, nil
}

// Config fetches the full daemon configuration (device and folder directory).
func (c *Client) Config(ctx context.Context) (*SystemConfig, error) {
	var config *SystemConfig

	resp, err := c.http.R().
		SetContext(ctx).
		SetSuccessResult(&config).
		Get(restConfig)

	if err := handleAPIError(resp, err, "config"); err != nil {
		return nil, err
	}

	return config, nil
}
