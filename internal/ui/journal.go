package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"chartgrip/internal/eventbus"
)

// journalPagerMsg contains the result of a journal pager command
type journalPagerMsg struct {
	err error
}

// Journal records selection lifecycle events as readable lines, so the
// sync behavior can be inspected from inside the app.
type Journal struct {
	mu    sync.Mutex
	lines []string
}

// NewJournal creates a journal subscribed to the bus
func NewJournal(bus eventbus.EventBus) *Journal {
	j := &Journal{}

	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			j.append(fmt.Sprintf("selection changed: %d identities", len(event.IDs)))
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		j.append("selection cleared")
	})
	bus.Subscribe(eventbus.EventSelectionRestored, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionRestoredEvent); ok {
			j.append(fmt.Sprintf("selection restored: %d identities", len(event.IDs)))
		}
	})
	bus.Subscribe(eventbus.EventViewSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ViewSavedEvent); ok {
			j.append(fmt.Sprintf("view saved: %s (%s)", event.Name, event.Path))
		}
	})
	bus.Subscribe(eventbus.EventDatasetLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DatasetLoadedEvent); ok {
			j.append(fmt.Sprintf("dataset loaded: %s (%d categories × %d series)",
				event.Name, event.Categories, event.Series))
		}
	})

	return j
}

func (j *Journal) append(line string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, time.Now().Format("15:04:05")+"  "+line)
}

// Content returns the journal as a single string for the pager
func (j *Journal) Content() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.lines) == 0 {
		return "no selection events yet"
	}
	return strings.Join(j.lines, "\n")
}

// JournalOps shows the journal in the ov pager
type JournalOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewJournalOps creates a new journal operations instance
func NewJournalOps() *JournalOps {
	return &JournalOps{}
}

// SetProgram stores the program reference once it exists
func (o *JournalOps) SetProgram(p *tea.Program) {
	o.program = p
}

// ShowInPager shows the journal content using the ov pager
func (o *JournalOps) ShowInPager(content string) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
