package interactivity

import (
	"chartgrip/internal/domain"
)

// State holds selection state
type State struct {
	// SelectedIDs is the authoritative selection, in insertion order.
	// Membership is always evaluated through Identity.Includes, never
	// equality, so one stored id may cover many data points.
	SelectedIDs []domain.Identity

	// InvertedSelectionMode flips primary-pool semantics: the stored ids
	// denote exclusions from an implicit "all selected" baseline.
	InvertedSelectionMode bool

	// SelectionOverride is a pass-through flag surfaced at bind time and
	// consumed by behaviors; the engine only stores it and resets it on clear.
	SelectionOverride bool
}

// SelectionHandler is the contract behaviors call back into on user gestures
type SelectionHandler interface {
	HandleSelection(d *domain.DataPoint, multiSelect bool)
	HandleClearSelection()
	ApplySelectionFilter()
}

// Behavior wires raw UI events to the selection handler and redraws
// visuals when the engine reports a selection change.
type Behavior interface {
	BindEvents(options any, handler SelectionHandler)
	RenderSelection(hasSelection bool)
}

// HostBridge is the host environment's persistent selection store
type HostBridge interface {
	Select(ids []domain.Identity)
	Clear()
	ApplySelectionFilter()
	GetSelectionIDs() []domain.Identity
}

// SelectionObserver is an optional HostBridge capability; when present the
// engine subscribes to host-originated selection changes and restores them.
type SelectionObserver interface {
	OnSelectionChanged(callback func())
}

// FilterResolver converts an external filter representation back into
// selection identities
type FilterResolver interface {
	RestoreSelectionIDs(filter any) []domain.Identity
}

// BindOptions routes a Bind call and carries the bind-time flags
type BindOptions struct {
	IsLegend                  bool // route to the legend pool
	IsLabels                  bool // route to the labels pool
	OverrideSelectionFromData bool // reseed SelectedIDs from the items' own flags
	HasSelectionOverride      bool // stored as State.SelectionOverride
}

// pool is one independently bound group of data points with its redraw trigger
type pool struct {
	points []*domain.DataPoint
	render func()
}
