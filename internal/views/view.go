// Package views implements the view synchronization layer: non-graphical
// view models that mirror the surfaces of the desktop UI (dashboard,
// income, expenses, transactions, reports, settings). Each view registers
// listeners on the shared state holders when activated and deregisters
// all of them when deactivated; a deactivated view never recomputes
// again. Front ends read snapshots and call the mutation helpers.
package views

// View is the common lifecycle every surface implements.
type View interface {
	// Name identifies the view; it doubles as the listener id.
	Name() string
	// Activate registers the view's listeners and computes the first
	// snapshot. Activating an active view is a no-op.
	Activate()
	// Deactivate removes every listener the view registered. The
	// lifecycle is symmetric: leaked listeners keep stale views
	// recomputing, which this layer must never allow.
	Deactivate()
	// Refresh recomputes the view's snapshot from current state.
	Refresh()
}
