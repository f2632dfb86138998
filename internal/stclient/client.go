package stclient

import (
	"fmt"
	"runtime"

	"github.com/imroc/req/v3"

	"syncbar/internal/version"
)

const (
	restEvents      = "/rest/events"
	restConnections = "/rest/system/connections"
	restConfig      = "/rest/system/config"

	// Event kinds the aggregator subscribes to. The daemon filters
	// server-side so the long-poll only wakes for these.
	eventFilter = "FolderCompletion,DeviceDisconnected"
)

var UserAgent = fmt.Sprintf("%s/%s (%s; %s; %s)", version.AppName, version.Version, version.Revision, runtime.GOOS, runtime.GOARCH)

// Client is a typed client for the slice of the Syncthing REST API the
// aggregator consumes: events, connections and config.
type Client struct {
	http *req.Client
}

// New builds a client from cfg. The API key is resolved (literal or
// file path) once, here; a bad key is a startup failure, not a loop one.
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key, err := ResolveSecret(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("resolve api key: %w", err)
	}

	// Timeout stays at zero: /rest/events long-polls and the daemon owns
	// the deadline. Retries stay off so failures reach the supervisor.
	client := req.C().
		SetBaseURL(cfg.BaseURL).
		SetCommonBearerAuthToken(key).
		SetUserAgent(UserAgent).
		SetTimeout(0).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &Client{http: client}, nil
}
