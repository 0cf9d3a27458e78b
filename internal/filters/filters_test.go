package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartgrip/internal/domain"
	"chartgrip/internal/identity"
)

func TestSelectionRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("")
	ids := []domain.Identity{
		identity.New("East", "Q1", "Sales"),
		identity.New("", "Q2", "Sales"),
		identity.New("", "", "Sales"), // measure-only fallback
	}

	f := m.FromSelection("quarter-focus", ids)
	require.NotEmpty(t, f.ID)
	require.Len(t, f.Scopes, 3)

	restored := m.RestoreSelectionIDs(f)
	require.Len(t, restored, 3, "sequence preserved verbatim")
	for i, id := range ids {
		assert.Equal(t, id.Key(), restored[i].Key())
		assert.Equal(t, id.HasIdentity(), restored[i].HasIdentity())
	}
}

func TestRestoreSelectionIDsUnknownFilter(t *testing.T) {
	t.Parallel()

	m := NewManager("")
	assert.Nil(t, m.RestoreSelectionIDs(42), "unrecognized filters degrade to nil")
	assert.Nil(t, m.RestoreSelectionIDs(nil))
}

func TestSaveAndLoadView(t *testing.T) {
	t.Parallel()

	m := NewManager(t.TempDir())
	f := m.FromSelection("west-only", []domain.Identity{identity.New("West", "", "Sales")})

	path, err := m.SaveView(f)
	require.NoError(t, err)
	require.FileExists(t, path)

	loaded, err := m.LoadView("west-only")
	require.NoError(t, err)
	assert.Equal(t, f.ID, loaded.ID)
	assert.Equal(t, f.Scopes, loaded.Scopes)

	names, err := m.ListViews()
	require.NoError(t, err)
	assert.Equal(t, []string{"west-only"}, names)
}

func TestLoadMissingView(t *testing.T) {
	t.Parallel()

	m := NewManager(t.TempDir())
	_, err := m.LoadView("nope")
	assert.Error(t, err)
}

func TestListViewsMissingDir(t *testing.T) {
	t.Parallel()

	m := NewManager("/nonexistent/views")
	names, err := m.ListViews()
	require.NoError(t, err)
	assert.Empty(t, names)
}
