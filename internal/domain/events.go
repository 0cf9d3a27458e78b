package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged       EventType = "SelectionChanged"
	EventSelectionCleared       EventType = "SelectionCleared"
	EventSelectionRestored      EventType = "SelectionRestored"
	EventSelectionFilterApplied EventType = "SelectionFilterApplied"
	EventDatasetLoaded          EventType = "DatasetLoaded"
	EventViewSaved              EventType = "ViewSaved"
	EventConfigLoaded           EventType = "ConfigLoaded"
	EventConfigSaved            EventType = "ConfigSaved"
	EventError                  EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after a user gesture mutates the selection
type SelectionChangedEvent struct {
	IDs []Identity // defensive copy of the selected identities
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the selection is cleared
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// SelectionRestoredEvent is emitted when selection is replaced from outside
// (filter restoration or a host-originated push)
type SelectionRestoredEvent struct {
	IDs []Identity
}

func (e SelectionRestoredEvent) Type() EventType { return EventSelectionRestored }

// SelectionFilterAppliedEvent is emitted when a stored filter is handed to the host
type SelectionFilterAppliedEvent struct {
	ViewName string
}

func (e SelectionFilterAppliedEvent) Type() EventType { return EventSelectionFilterApplied }

// DatasetLoadedEvent is emitted when the demo dataset has been read
type DatasetLoadedEvent struct {
	Name       string
	Categories int
	Series     int
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// ViewSavedEvent is emitted when a named selection view is written to disk
type ViewSavedEvent struct {
	Name string
	Path string
}

func (e ViewSavedEvent) Type() EventType { return EventViewSaved }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
