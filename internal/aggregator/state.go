package aggregator

// Progress is the sync progress of one folder on one device.
type Progress struct {
	Completion float64
	NeedBytes  int64
}

// State is the aggregator's whole view of the daemon: the pending-transfer
// table, the device/folder display-name caches, and the event watermark.
// A single reconcile loop owns it; nothing locks it.
type State struct {
	// Devices and Folders map IDs to display names. Both are replaced
	// wholesale on refresh, never merged, and may go stale in between.
	Devices map[string]string
	Folders map[string]string

	// Pending maps device ID to the folders still syncing on it. A row may
	// be empty: 100% completions remove folders but leave the row, which
	// only means the device was seen.
	Pending map[string]map[string]Progress

	// Since is the ID of the last consumed event.
	Since uint64
}

func NewState() *State {
	return &State{
		Devices: make(map[string]string),
		Folders: make(map[string]string),
		Pending: make(map[string]map[string]Progress),
	}
}

// DeviceName resolves a device ID for display. Unknown IDs display as themselves.
func (s *State) DeviceName(id string) string {
	if name, ok := s.Devices[id]; ok {
		return name
	}
	return id
}

// FolderName resolves a folder ID for display. Unknown IDs display as themselves.
func (s *State) FolderName(id string) string {
	if name, ok := s.Folders[id]; ok {
		return name
	}
	return id
}
