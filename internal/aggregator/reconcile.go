package aggregator

import (
	"context"

	"syncbar/internal/stclient"
)

// Gateway is the slice of the daemon REST API the reconciler consumes.
// *stclient.Client implements it.
type Gateway interface {
	Events(ctx context.Context, since uint64) ([]stclient.Event, error)
	Connections(ctx context.Context) (*stclient.ConnectionsResponse, error)
	Config(ctx context.Context) (*stclient.SystemConfig, error)
}

// Reconciler folds the daemon's event stream into a State.
type Reconciler struct {
	gw    Gateway
	state *State
}

func New(gw Gateway) *Reconciler {
	return &Reconciler{
		gw:    gw,
		state: NewState(),
	}
}

func (r *Reconciler) State() *State {
	return r.state
}

// Reconcile fetches the next event batch, folds it into the state, advances
// the watermark and prunes rows for disconnected devices. Any error aborts
// the iteration with the state as-is; there is no rollback.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	batch, err := r.gw.Events(ctx, r.state.Since)
	if err != nil {
		return err
	}

	// One lookahead pass over the batch, so many unknown IDs still cost a
	// single config fetch.
	if r.needsRefresh(batch) {
		if err := r.refreshDirectory(ctx); err != nil {
			return err
		}
	}

	for i := range batch {
		r.apply(&batch[i])
	}

	if len(batch) > 0 {
		r.state.Since = batch[len(batch)-1].ID
	}

	// Always prune: connection state can change without producing any of
	// the subscribed events.
	return r.prune(ctx)
}

func (r *Reconciler) needsRefresh(batch []stclient.Event) bool {
	for i := range batch {
		fc := batch[i].FolderCompletion
		if fc == nil {
			continue
		}
		if _, ok := r.state.Devices[fc.Device]; !ok {
			return true
		}
		if _, ok := r.state.Folders[fc.Folder]; !ok {
			return true
		}
	}
	return false
}

func (r *Reconciler) apply(ev *stclient.Event) {
	switch {
	case ev.FolderCompletion != nil:
		fc := ev.FolderCompletion
		if fc.Completion == 100.0 {
			// Fully synced. May leave an empty row behind; harmless,
			// never rendered.
			delete(r.state.Pending[fc.Device], fc.Folder)
			return
		}
		row := r.state.Pending[fc.Device]
		if row == nil {
			row = make(map[string]Progress)
			r.state.Pending[fc.Device] = row
		}
		// Overwrite unconditionally, rewinds included.
		row[fc.Folder] = Progress{
			Completion: fc.Completion,
			NeedBytes:  fc.NeedBytes,
		}

	case ev.DeviceDisconnected != nil:
		delete(r.state.Pending, ev.DeviceDisconnected.ID)
	}
}
