package aggregator

import (
	"context"
	"log/slog"
)

// refreshDirectory replaces both name caches wholesale from the daemon
// config. Merging would let renamed or removed entries linger, so it never
// does.
func (r *Reconciler) refreshDirectory(ctx context.Context) error {
	slog.Debug("refreshing device and folder names")

	cfg, err := r.gw.Config(ctx)
	if err != nil {
		return err
	}

	devices := make(map[string]string, len(cfg.Devices))
	for _, d := range cfg.Devices {
		devices[d.DeviceID] = d.Name
	}

	folders := make(map[string]string, len(cfg.Folders))
	for _, f := range cfg.Folders {
		folders[f.ID] = f.Label
	}

	r.state.Devices = devices
	r.state.Folders = folders
	return nil
}
