package ui

import (
	"chartgrip/internal/domain"
	"chartgrip/internal/interactivity"
)

// ChartBehavior wires terminal input to the interactivity engine and
// tracks redraw requests coming back from it. One instance is shared by
// all three pools; the engine calls RenderSelection once per pool on each
// render pass.
type ChartBehavior struct {
	handler      interactivity.SelectionHandler
	options      any
	hasSelection bool
	dirty        bool
}

// NewChartBehavior creates a new chart behavior
func NewChartBehavior() *ChartBehavior {
	return &ChartBehavior{}
}

// BindEvents stores the selection handler the engine exposes. The options
// value is caller-defined and passed through unexamined.
func (b *ChartBehavior) BindEvents(options any, handler interactivity.SelectionHandler) {
	b.options = options
	b.handler = handler
}

// RenderSelection is called by the engine's render triggers
func (b *ChartBehavior) RenderSelection(hasSelection bool) {
	b.hasSelection = hasSelection
	b.dirty = true
}

// Select forwards a select gesture to the engine
func (b *ChartBehavior) Select(d *domain.DataPoint, multiSelect bool) {
	if b.handler == nil {
		return
	}
	b.handler.HandleSelection(d, multiSelect)
}

// Clear forwards a clear gesture to the engine
func (b *ChartBehavior) Clear() {
	if b.handler == nil {
		return
	}
	b.handler.HandleClearSelection()
}

// PersistFilter asks the engine to hand the selection filter to the host
func (b *ChartBehavior) PersistFilter() {
	if b.handler == nil {
		return
	}
	b.handler.ApplySelectionFilter()
}

// ConsumeRender reports whether a redraw was requested since the last call
func (b *ChartBehavior) ConsumeRender() bool {
	dirty := b.dirty
	b.dirty = false
	return dirty
}

// HasSelection returns the last selection state the engine rendered
func (b *ChartBehavior) HasSelection() bool {
	return b.hasSelection
}
