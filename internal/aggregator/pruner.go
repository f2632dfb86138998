package aggregator

import (
	"context"
)

// prune evicts pending rows for every device the daemon reports as not
// connected. Devices absent from the response are left untouched: no
// information implies no change, so a partial response never evicts.
func (r *Reconciler) prune(ctx context.Context) error {
	resp, err := r.gw.Connections(ctx)
	if err != nil {
		return err
	}

	for id, conn := range resp.Connections {
		if !conn.Connected {
			delete(r.state.Pending, id)
		}
	}

	return nil
}
