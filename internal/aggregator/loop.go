package aggregator

import (
	"context"
	"fmt"
	"io"
)

// Run drives reconcile-then-render forever. There is no sleep: the events
// long-poll paces the loop to the daemon's cadence. A render always sees a
// fully applied batch. Any transport or decode error aborts the loop and is
// returned for the supervisor to handle; ctx cancellation surfaces the same
// way, through the blocked events call.
func (r *Reconciler) Run(ctx context.Context, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.Reconcile(ctx); err != nil {
			return err
		}

		line, err := jsonMarshal(Render(r.state))
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}

		if _, err := fmt.Fprintf(out, "%s\n", line); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
}
