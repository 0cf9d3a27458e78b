package interactivity

import (
	"chartgrip/internal/domain"
	"chartgrip/internal/eventbus"
)

// Service is the interactivity engine. It owns the selection state and up
// to three pools of data points (primary, legend, labels), keeps every
// pool's Selected flags consistent with the selected ids after each
// gesture, and relays changes to the host bridge.
//
// All operations are synchronous: when any public method returns, every
// bound pool agrees with the selection state. Missing collaborators and
// unbound pools are normal and degrade to no-ops, never errors.
type Service struct {
	state    *State
	bridge   HostBridge
	resolver FilterResolver
	bus      eventbus.EventBus

	behavior Behavior
	primary  pool
	legend   pool
	labels   pool
}

// NewService creates a new interactivity engine. Any of bridge, resolver
// and bus may be nil; the corresponding notifications become no-ops.
func NewService(bridge HostBridge, resolver FilterResolver, bus eventbus.EventBus) *Service {
	noop := func() {}
	s := &Service{
		state:    &State{},
		bridge:   bridge,
		resolver: resolver,
		bus:      bus,
		primary:  pool{render: noop},
		legend:   pool{render: noop},
		labels:   pool{render: noop},
	}

	// Re-subscribe to host-originated selection changes when the bridge
	// supports it (cross-filtering, saved view restoration)
	if observer, ok := bridge.(SelectionObserver); ok {
		observer.OnSelectionChanged(func() {
			s.RestoreSelection(s.bridge.GetSelectionIDs())
		})
	}

	return s
}

// Bind replaces the target pool's data points and render trigger, hands the
// selection handler to the behavior, and resynchronizes all pools. Absent
// IsLegend/IsLabels the points go to the primary pool.
func (s *Service) Bind(points []*domain.DataPoint, behavior Behavior, behaviorOptions any, opts *BindOptions) {
	if opts != nil {
		if opts.OverrideSelectionFromData {
			s.takeSelectionStateFromDataPoints(points)
		}
		s.state.SelectionOverride = opts.HasSelectionOverride
	}

	target := &s.primary
	hasSelectionFn := s.HasSelection
	switch {
	case opts != nil && opts.IsLegend:
		target = &s.legend
		hasSelectionFn = s.LegendHasSelection
	case opts != nil && opts.IsLabels:
		target = &s.labels
	}

	target.points = points
	target.render = func() {
		behavior.RenderSelection(hasSelectionFn())
	}

	s.behavior = behavior
	behavior.BindEvents(behaviorOptions, s)

	s.syncSelectionState()
}

// HasSelection returns true if any identity is currently selected
func (s *Service) HasSelection() bool {
	return len(s.state.SelectedIDs) > 0
}

// LegendHasSelection returns true if any legend data point is selected
func (s *Service) LegendHasSelection() bool {
	for _, d := range s.legend.points {
		if d.Selected {
			return true
		}
	}
	return false
}

// IsSelectionModeInverted reports whether inverted semantics are active
func (s *Service) IsSelectionModeInverted() bool {
	return s.state.InvertedSelectionMode
}

// SetSelectionModeInverted switches between normal and inverted semantics
func (s *Service) SetSelectionModeInverted(inverted bool) {
	s.state.InvertedSelectionMode = inverted
}

// HasSelectionOverride returns the pass-through override flag
func (s *Service) HasSelectionOverride() bool {
	return s.state.SelectionOverride
}

// SelectedIDs returns a copy of the current selection
func (s *Service) SelectedIDs() []domain.Identity {
	return append([]domain.Identity(nil), s.state.SelectedIDs...)
}

// HandleSelection applies a select gesture to the given data point.
// A nil point is ignored; a point without an identity clears the selection.
func (s *Service) HandleSelection(d *domain.DataPoint, multiSelect bool) {
	if d == nil {
		return
	}
	if d.Identity == nil {
		s.HandleClearSelection()
		return
	}

	s.selectDataPoint(d, multiSelect)
	s.sendSelectionToHost()
	s.renderAll()
	s.publish(domain.SelectionChangedEvent{IDs: s.SelectedIDs()})
}

// HandleClearSelection clears the selection and notifies the host
func (s *Service) HandleClearSelection() {
	s.ClearSelection()
	s.sendSelectionToHost()
	s.publish(domain.SelectionClearedEvent{})
}

// ApplySelectionFilter asks the host to persist the current selection as a
// filter. No-op without a bridge.
func (s *Service) ApplySelectionFilter() {
	if s.bridge == nil {
		return
	}
	s.bridge.ApplySelectionFilter()
}

// ClearSelection empties the selection, forces every bound point to
// unselected, drops the override flag and triggers a render pass
func (s *Service) ClearSelection() {
	s.clearSelectionInternal()
	s.state.SelectionOverride = false
	s.renderAll()
}

// ApplySelectionStateToData sets each supplied point's Selected flag from
// the current selection and reports whether anything ended up selected.
// When hasHighlights is true and a selection exists, the incoming highlight
// data takes precedence: both the engine's ids and the host's selection set
// are wiped first.
func (s *Service) ApplySelectionStateToData(points []*domain.DataPoint, hasHighlights bool) bool {
	if hasHighlights && s.HasSelection() {
		s.state.SelectedIDs = nil
		if s.bridge != nil {
			s.bridge.Clear()
		}
	}

	anySelected := false
	for _, d := range points {
		d.Selected = s.isSelected(d.Identity)
		if d.Selected {
			anySelected = true
		}
	}
	return anySelected
}

// ApplySelectionFromFilter restores selection from an external filter
// representation. No-op without a resolver.
func (s *Service) ApplySelectionFromFilter(filter any) {
	if s.resolver == nil {
		return
	}
	s.RestoreSelection(s.resolver.RestoreSelectionIDs(filter))
}

// RestoreSelection replaces the selection with the supplied ids verbatim
// (no deduplication, no containment collapsing), resyncs and rerenders.
// Used for filter restoration and host-originated selection pushes.
func (s *Service) RestoreSelection(ids []domain.Identity) {
	s.ClearSelection()
	s.state.SelectedIDs = append([]domain.Identity(nil), ids...)
	s.syncSelectionState()
	s.renderAll()
	s.publish(domain.SelectionRestoredEvent{IDs: s.SelectedIDs()})
}

// takeSelectionStateFromDataPoints replaces the selection wholesale with
// the identities of the points already flagged selected, in input order.
// Used when the incoming data is the source of truth, e.g. a refresh that
// already encodes prior selection.
func (s *Service) takeSelectionStateFromDataPoints(points []*domain.DataPoint) {
	var ids []domain.Identity
	for _, d := range points {
		if d.Selected && d.Identity != nil {
			ids = append(ids, d.Identity)
		}
	}
	s.state.SelectedIDs = ids
}

// selectDataPoint runs the core select algorithm for one gesture
func (s *Service) selectDataPoint(d *domain.DataPoint, multiSelect bool) {
	id := d.Identity
	if id == nil {
		return
	}

	// The gesture means "select" when the point was unselected, and also
	// when a single-select lands on one of several selected points: the
	// point survives and the rest are dropped.
	wasToggleOn := !d.Selected || (!multiSelect && len(s.state.SelectedIDs) > 1)

	if multiSelect {
		if wasToggleOn {
			d.Selected = true
			s.state.SelectedIDs = append(s.state.SelectedIDs, id)
			// Concrete and measure-only selections are mutually
			// exclusive modes; adding one kind evicts the other.
			if id.HasIdentity() {
				s.removeSelectionIDsWithOnlyMeasures()
			} else {
				s.removeSelectionIDsExceptOnlyMeasures()
			}
		} else {
			d.Selected = false
			s.removeID(id)
		}
	} else {
		s.ClearSelection()
		if wasToggleOn {
			d.Selected = true
			s.state.SelectedIDs = append(s.state.SelectedIDs, id)
		}
	}

	s.syncSelectionState()
}

// removeID drops every stored id that matches toRemove by containment in
// either direction, so one call may remove broader and narrower matches.
func (s *Service) removeID(toRemove domain.Identity) {
	kept := s.state.SelectedIDs[:0]
	for _, id := range s.state.SelectedIDs {
		if toRemove.Includes(id) || id.Includes(toRemove) {
			continue
		}
		kept = append(kept, id)
	}
	s.state.SelectedIDs = kept
}

func (s *Service) removeSelectionIDsWithOnlyMeasures() {
	kept := s.state.SelectedIDs[:0]
	for _, id := range s.state.SelectedIDs {
		if id.HasIdentity() {
			kept = append(kept, id)
		}
	}
	s.state.SelectedIDs = kept
}

func (s *Service) removeSelectionIDsExceptOnlyMeasures() {
	kept := s.state.SelectedIDs[:0]
	for _, id := range s.state.SelectedIDs {
		if !id.HasIdentity() {
			kept = append(kept, id)
		}
	}
	s.state.SelectedIDs = kept
}

// syncSelectionState makes every bound pool's Selected flags agree with
// the selected ids
func (s *Service) syncSelectionState() {
	if s.state.InvertedSelectionMode {
		s.syncSelectionStateInverted()
		return
	}

	for _, d := range s.primary.points {
		d.Selected = s.isSelected(d.Identity)
	}
	for _, d := range s.legend.points {
		d.Selected = s.isSelected(d.Identity)
	}

	// Labels can be bound on their own, so they get an independent pass
	for _, d := range s.labels.points {
		d.Selected = s.isSelected(d.Identity)
	}
}

// syncSelectionStateInverted handles inverted mode. Only the primary pool
// is updated; inverted semantics were never extended to legend or labels.
func (s *Service) syncSelectionStateInverted() {
	if len(s.state.SelectedIDs) == 0 {
		// Inverted-empty: nothing is explicitly excluded, nothing highlighted
		for _, d := range s.primary.points {
			d.Selected = false
		}
		return
	}

	for _, d := range s.primary.points {
		if s.isSelected(d.Identity) {
			d.Selected = true
		} else if d.Selected {
			d.Selected = false
		}
	}
}

// isSelected reports whether some selected id contains the given identity
func (s *Service) isSelected(id domain.Identity) bool {
	if id == nil {
		return false
	}
	for _, selected := range s.state.SelectedIDs {
		if selected.Includes(id) {
			return true
		}
	}
	return false
}

// clearSelectionInternal resets the ids and forces every bound point
// unselected without touching the host or the override flag
func (s *Service) clearSelectionInternal() {
	s.state.SelectedIDs = nil
	for _, d := range s.primary.points {
		d.Selected = false
	}
	for _, d := range s.legend.points {
		d.Selected = false
	}
	for _, d := range s.labels.points {
		d.Selected = false
	}
}

// sendSelectionToHost pushes a defensive copy of the selection to the
// bridge, or its clear entry point when nothing is selected
func (s *Service) sendSelectionToHost() {
	if s.bridge == nil {
		return
	}
	if s.HasSelection() {
		s.bridge.Select(s.SelectedIDs())
		return
	}
	s.bridge.Clear()
}

// renderAll invokes every pool's render trigger
func (s *Service) renderAll() {
	s.primary.render()
	s.legend.render()
	s.labels.render()
}

func (s *Service) publish(event domain.DomainEvent) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event)
}
