package stclient

import (
	"encoding/json"
	"fmt"
)

type EventType string

const (
	EventFolderCompletion   EventType = "FolderCompletion"
	EventDeviceDisconnected EventType = "DeviceDisconnected"
)

// FolderCompletion reports sync progress of one folder on one device.
type FolderCompletion struct {
	Completion float64 `json:"completion"`
	NeedBytes  int64   `json:"needBytes"`
	Device     string  `json:"device"`
	Folder     string  `json:"folder"`
}

// DeviceDisconnected reports that a device dropped its connection.
type DeviceDisconnected struct {
	ID string `json:"id"`
}

// Event is one entry of the /rest/events stream. Exactly one payload
// field is non-nil, matching Type.
type Event struct {
	ID                 uint64
	Type               EventType
	FolderCompletion   *FolderCompletion
	DeviceDisconnected *DeviceDisconnected
}

// UnmarshalJSON dispatches the tagged payload on the "type" field.
func (e *Event) UnmarshalJSON(data []byte) error {
	var envelope struct {
		ID   uint64          `json:"id"`
		Type EventType       `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := jsonUnmarshal(data, &envelope); err != nil {
		return err
	}

	e.ID = envelope.ID
	e.Type = envelope.Type

	switch envelope.Type {
	case EventFolderCompletion:
		e.FolderCompletion = &FolderCompletion{}
		return jsonUnmarshal(envelope.Data, e.FolderCompletion)
	case EventDeviceDisconnected:
		e.DeviceDisconnected = &DeviceDisconnected{}
		return jsonUnmarshal(envelope.Data, e.DeviceDisconnected)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, envelope.Type)
	}
}

// ConnectionsResponse is the /rest/system/connections payload, keyed by
// device ID.
type ConnectionsResponse struct {
	Connections map[string]Connection `json:"connections"`
}

type Connection struct {
	Connected     bool   `json:"connected"`
	Paused        bool   `json:"paused"`
	Address       string `json:"address"`
	ClientVersion string `json:"clientVersion"`
}

// SystemConfig is the subset of /rest/system/config the aggregator reads:
// the device and folder directory.
type SystemConfig struct {
	Devices []DeviceConfig `json:"devices"`
	Folders []FolderConfig `json:"folders"`
}

type DeviceConfig struct {
	DeviceID string `json:"deviceID"`
	Name     string `json:"name"`
}

type FolderConfig struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
