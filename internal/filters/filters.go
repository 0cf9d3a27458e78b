package filters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"chartgrip/internal/domain"
	"chartgrip/internal/identity"
)

// Scope is one serialized identity scope
type Scope struct {
	Category string `toml:"category,omitempty"`
	Series   string `toml:"series,omitempty"`
	Measure  string `toml:"measure,omitempty"`
}

// SelectionFilter is the persistable representation of a selection set.
// Round-tripping through it must preserve the identity sequence: the
// engine restores verbatim, order included.
type SelectionFilter struct {
	ID     string  `toml:"id"`
	Name   string  `toml:"name"`
	Scopes []Scope `toml:"scopes"`
}

// Manager converts between selection identities and filters, and persists
// named filters as saved views under a directory.
type Manager struct {
	viewsDir string
}

// NewManager creates a filter manager. viewsDir may be empty if saved
// views are not needed.
func NewManager(viewsDir string) *Manager {
	return &Manager{viewsDir: viewsDir}
}

// RestoreSelectionIDs converts a filter back into selection identities.
// Unrecognized filter values yield nil, which the engine treats as an
// empty restore rather than an error.
func (m *Manager) RestoreSelectionIDs(filter any) []domain.Identity {
	var f *SelectionFilter
	switch v := filter.(type) {
	case *SelectionFilter:
		f = v
	case SelectionFilter:
		f = &v
	default:
		return nil
	}

	ids := make([]domain.Identity, 0, len(f.Scopes))
	for _, scope := range f.Scopes {
		ids = append(ids, identity.New(scope.Category, scope.Series, scope.Measure))
	}
	return ids
}

// FromSelection builds a named filter out of the current selection
func (m *Manager) FromSelection(name string, ids []domain.Identity) *SelectionFilter {
	f := &SelectionFilter{
		ID:   uuid.NewString(),
		Name: name,
	}
	for _, id := range ids {
		scoped := identity.FromKey(id.Key())
		f.Scopes = append(f.Scopes, Scope{
			Category: scoped.Category(),
			Series:   scoped.Series(),
			Measure:  scoped.Measure(),
		})
	}
	return f
}

// SaveView writes the filter to the views directory as <name>.toml
func (m *Manager) SaveView(f *SelectionFilter) (string, error) {
	if m.viewsDir == "" {
		return "", fmt.Errorf("no views directory configured")
	}
	if err := os.MkdirAll(m.viewsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create views directory: %w", err)
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to encode view: %w", err)
	}

	path := filepath.Join(m.viewsDir, f.Name+".toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write view: %w", err)
	}
	return path, nil
}

// LoadView reads a saved view by name
func (m *Manager) LoadView(name string) (*SelectionFilter, error) {
	path := filepath.Join(m.viewsDir, name+".toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read view: %w", err)
	}

	var f SelectionFilter
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse view: %w", err)
	}
	return &f, nil
}

// ListViews returns the names of all saved views
func (m *Manager) ListViews() ([]string, error) {
	entries, err := os.ReadDir(m.viewsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list views: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".toml"))
	}
	return names, nil
}
