package bridge

import (
	"log"
	"sync"

	"chartgrip/internal/domain"
	"chartgrip/internal/interactivity"
)

// HostStore is an in-memory host selection store. It stands in for the
// rendering host's persistent selection set: the engine pushes selection
// changes into it, and out-of-band changes (cross-filtering from another
// visual, saved view restoration) flow back through the change callback.
type HostStore struct {
	mu        sync.RWMutex
	selected  []domain.Identity
	filter    any
	resolver  interactivity.FilterResolver
	callbacks []func()
}

// NewHostStore creates a new host selection store. The resolver is used by
// ApplySelectionFilter and may be nil.
func NewHostStore(resolver interactivity.FilterResolver) *HostStore {
	return &HostStore{resolver: resolver}
}

// Select replaces the host-side selection set
func (h *HostStore) Select(ids []domain.Identity) {
	h.mu.Lock()
	h.selected = append([]domain.Identity(nil), ids...)
	h.mu.Unlock()
}

// Clear empties the host-side selection set
func (h *HostStore) Clear() {
	h.mu.Lock()
	h.selected = nil
	h.mu.Unlock()
}

// GetSelectionIDs returns a copy of the host-side selection set
func (h *HostStore) GetSelectionIDs() []domain.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]domain.Identity(nil), h.selected...)
}

// OnSelectionChanged registers a callback for host-originated selection
// changes. The engine uses this to re-read the selection and restore it.
func (h *HostStore) OnSelectionChanged(callback func()) {
	h.mu.Lock()
	h.callbacks = append(h.callbacks, callback)
	h.mu.Unlock()
}

// StoreFilter records a filter to apply later through ApplySelectionFilter
func (h *HostStore) StoreFilter(filter any) {
	h.mu.Lock()
	h.filter = filter
	h.mu.Unlock()
}

// ApplySelectionFilter resolves the stored filter back into identities and
// pushes them as a host-originated selection change. No-op when no filter
// is stored or no resolver is available.
func (h *HostStore) ApplySelectionFilter() {
	h.mu.Lock()
	if h.filter == nil || h.resolver == nil {
		h.mu.Unlock()
		return
	}
	ids := h.resolver.RestoreSelectionIDs(h.filter)
	h.selected = ids
	h.mu.Unlock()

	log.Printf("HostStore: applied stored filter, %d identities", len(ids))
	h.notify()
}

// PushSelection simulates a host-originated selection change, e.g. another
// visual cross-filtering this one
func (h *HostStore) PushSelection(ids []domain.Identity) {
	h.mu.Lock()
	h.selected = append([]domain.Identity(nil), ids...)
	h.mu.Unlock()

	h.notify()
}

func (h *HostStore) notify() {
	h.mu.RLock()
	callbacks := make([]func(), len(h.callbacks))
	copy(callbacks, h.callbacks)
	h.mu.RUnlock()

	for _, callback := range callbacks {
		callback()
	}
}
