package interactivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartgrip/internal/domain"
	"chartgrip/internal/identity"
)

// fakeBehavior records the handler it was given and render invocations
type fakeBehavior struct {
	handler     SelectionHandler
	options     any
	renderCount int
	lastRender  bool
}

func (b *fakeBehavior) BindEvents(options any, handler SelectionHandler) {
	b.options = options
	b.handler = handler
}

func (b *fakeBehavior) RenderSelection(hasSelection bool) {
	b.renderCount++
	b.lastRender = hasSelection
}

// fakeBridge is an in-test host selection store
type fakeBridge struct {
	selected []domain.Identity
	clears   int
	applied  int
	callback func()
}

func (f *fakeBridge) Select(ids []domain.Identity) { f.selected = ids }
func (f *fakeBridge) Clear()                       { f.clears++; f.selected = nil }
func (f *fakeBridge) ApplySelectionFilter()        { f.applied++ }
func (f *fakeBridge) GetSelectionIDs() []domain.Identity {
	return f.selected
}
func (f *fakeBridge) OnSelectionChanged(callback func()) { f.callback = callback }

// fakeResolver returns a fixed set of identities for any filter
type fakeResolver struct {
	ids []domain.Identity
}

func (f *fakeResolver) RestoreSelectionIDs(filter any) []domain.Identity {
	return f.ids
}

func pointID(category, series string) domain.Identity {
	return identity.NewBuilder().WithCategory(category).WithSeries(series).WithMeasure("Sales").Create()
}

func seriesID(series string) domain.Identity {
	return identity.NewBuilder().WithSeries(series).WithMeasure("Sales").Create()
}

func measureID() domain.Identity {
	return identity.NewBuilder().WithMeasure("Sales").Create()
}

func points(ids ...domain.Identity) []*domain.DataPoint {
	out := make([]*domain.DataPoint, len(ids))
	for i, id := range ids {
		out[i] = &domain.DataPoint{Identity: id}
	}
	return out
}

// assertSynced checks the sync invariant: every point's Selected flag must
// equal the containment test of its identity against the selected ids
func assertSynced(t *testing.T, svc *Service, pools ...[]*domain.DataPoint) {
	t.Helper()
	ids := svc.SelectedIDs()
	for _, pool := range pools {
		for _, d := range pool {
			want := false
			for _, id := range ids {
				if id.Includes(d.Identity) {
					want = true
					break
				}
			}
			assert.Equal(t, want, d.Selected, "point %v out of sync", d.Identity)
		}
	}
}

func newBoundService(t *testing.T, bridge HostBridge) (*Service, *fakeBehavior, []*domain.DataPoint, []*domain.DataPoint) {
	t.Helper()

	svc := NewService(bridge, nil, nil)
	behavior := &fakeBehavior{}

	primary := points(
		pointID("East", "Q1"), pointID("East", "Q2"),
		pointID("West", "Q1"), pointID("West", "Q2"),
	)
	legend := points(seriesID("Q1"), seriesID("Q2"))

	svc.Bind(primary, behavior, nil, nil)
	svc.Bind(legend, behavior, nil, &BindOptions{IsLegend: true})
	require.NotNil(t, behavior.handler, "bind should hand the handler to the behavior")

	return svc, behavior, primary, legend
}

func TestBindDoesNotRender(t *testing.T) {
	t.Parallel()

	_, behavior, _, _ := newBoundService(t, nil)
	assert.Zero(t, behavior.renderCount, "bind syncs but must not trigger a render pass")
}

func TestSyncInvariantAcrossGestures(t *testing.T) {
	t.Parallel()

	svc, _, primary, legend := newBoundService(t, nil)

	svc.HandleSelection(primary[0], false)
	assertSynced(t, svc, primary, legend)

	svc.HandleSelection(primary[2], true)
	assertSynced(t, svc, primary, legend)

	svc.HandleSelection(legend[1], true)
	assertSynced(t, svc, primary, legend)

	svc.HandleClearSelection()
	assertSynced(t, svc, primary, legend)
}

func TestSingleSelectReplacesSelection(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)

	svc.HandleSelection(primary[0], false)
	svc.HandleSelection(primary[1], false)

	ids := svc.SelectedIDs()
	require.Len(t, ids, 1)
	assert.True(t, ids[0].Includes(primary[1].Identity))
	assert.False(t, primary[0].Selected)
	assert.True(t, primary[1].Selected)
}

func TestSingleSelectReaffirmsSoleSelection(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)

	svc.HandleSelection(primary[0], false)
	svc.HandleSelection(primary[0], false)

	assert.Len(t, svc.SelectedIDs(), 1, "re-clicking the sole selection keeps it selected")
	assert.True(t, primary[0].Selected)
}

func TestMultiSelectAccumulates(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)

	svc.HandleSelection(primary[0], true)
	svc.HandleSelection(primary[2], true)

	require.Len(t, svc.SelectedIDs(), 2)
	assert.True(t, primary[0].Selected)
	assert.True(t, primary[2].Selected)
}

func TestMultiSelectMeasureEvictsConcrete(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	measurePoint := &domain.DataPoint{Identity: measureID()}

	svc.HandleSelection(primary[0], true)
	svc.HandleSelection(primary[2], true)
	require.Len(t, svc.SelectedIDs(), 2)

	svc.HandleSelection(measurePoint, true)

	ids := svc.SelectedIDs()
	require.Len(t, ids, 1, "measure-only selection should evict concrete ids")
	assert.False(t, ids[0].HasIdentity())
}

func TestMultiSelectConcreteEvictsMeasure(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	measurePoint := &domain.DataPoint{Identity: measureID()}

	svc.HandleSelection(measurePoint, true)
	svc.HandleSelection(primary[0], true)

	ids := svc.SelectedIDs()
	require.Len(t, ids, 1, "concrete selection should evict measure-only ids")
	assert.True(t, ids[0].HasIdentity())
}

func TestMultiSelectToggleOff(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)

	svc.HandleSelection(primary[0], true)
	svc.HandleSelection(primary[0], true)

	assert.Empty(t, svc.SelectedIDs())
	assert.False(t, primary[0].Selected)
	assert.False(t, svc.HasSelection())
}

func TestToggleOffDropsBroaderMatch(t *testing.T) {
	t.Parallel()

	svc, _, primary, legend := newBoundService(t, nil)

	// Selecting the Q1 legend item selects every Q1 bar through containment
	svc.HandleSelection(legend[0], true)
	require.True(t, primary[0].Selected)
	require.True(t, primary[2].Selected)

	// Toggling off one contained bar removes the broader series id too
	svc.HandleSelection(primary[0], true)
	assert.Empty(t, svc.SelectedIDs(), "removal by containment drops the broader id")
	assertSynced(t, svc, primary, legend)
}

func TestLegendSelectionSubsumesBars(t *testing.T) {
	t.Parallel()

	svc, _, primary, legend := newBoundService(t, nil)

	svc.HandleSelection(legend[0], false)

	assert.True(t, primary[0].Selected, "East×Q1 contained in Q1 series id")
	assert.True(t, primary[2].Selected, "West×Q1 contained in Q1 series id")
	assert.False(t, primary[1].Selected)
	assert.False(t, primary[3].Selected)
	assert.True(t, svc.LegendHasSelection())
}

func TestClearSelection(t *testing.T) {
	t.Parallel()

	svc, _, primary, legend := newBoundService(t, nil)

	svc.HandleSelection(primary[0], true)
	svc.HandleSelection(legend[1], true)
	require.True(t, svc.HasSelection())

	svc.ClearSelection()

	assert.Empty(t, svc.SelectedIDs())
	assert.False(t, svc.HasSelection())
	assert.False(t, svc.LegendHasSelection())
	for _, d := range primary {
		assert.False(t, d.Selected)
	}
}

func TestClearSelectionResetsOverride(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil)
	behavior := &fakeBehavior{}
	svc.Bind(points(pointID("East", "Q1")), behavior, nil, &BindOptions{HasSelectionOverride: true})
	require.True(t, svc.HasSelectionOverride())

	svc.ClearSelection()
	assert.False(t, svc.HasSelectionOverride())
}

func TestHandleSelectionNilPoint(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	svc.HandleSelection(primary[0], false)

	svc.HandleSelection(nil, false)

	assert.True(t, svc.HasSelection(), "nil point is ignored")
}

func TestHandleSelectionWithoutIdentityClears(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	svc.HandleSelection(primary[0], false)
	require.True(t, svc.HasSelection())

	svc.HandleSelection(&domain.DataPoint{}, false)

	assert.False(t, svc.HasSelection(), "identity-less point acts as clear")
}

func TestRenderPassAfterGesture(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil)
	behavior := &fakeBehavior{}
	primary := points(pointID("East", "Q1"), pointID("West", "Q1"))
	svc.Bind(primary, behavior, nil, nil)

	svc.HandleSelection(primary[0], false)
	assert.Positive(t, behavior.renderCount)
	assert.True(t, behavior.lastRender, "primary render reports hasSelection")

	behavior.renderCount = 0
	svc.HandleClearSelection()
	assert.Positive(t, behavior.renderCount)
	assert.False(t, behavior.lastRender)
}

func TestSendSelectionToHost(t *testing.T) {
	t.Parallel()

	bridge := &fakeBridge{}
	svc, _, primary, _ := newBoundService(t, bridge)

	svc.HandleSelection(primary[0], false)
	require.Len(t, bridge.selected, 1)

	// The bridge gets a defensive copy, never the live sequence
	bridge.selected[0] = nil
	assert.NotNil(t, svc.SelectedIDs()[0])

	svc.HandleClearSelection()
	assert.Positive(t, bridge.clears)
}

func TestApplySelectionFilterDelegates(t *testing.T) {
	t.Parallel()

	bridge := &fakeBridge{}
	svc, _, _, _ := newBoundService(t, bridge)

	svc.ApplySelectionFilter()
	assert.Equal(t, 1, bridge.applied)
}

func TestMissingBridgeIsNoop(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)

	// None of these may panic without a bridge
	svc.HandleSelection(primary[0], false)
	svc.HandleClearSelection()
	svc.ApplySelectionFilter()
	svc.ApplySelectionFromFilter("anything")
}

func TestRestoreSelection(t *testing.T) {
	t.Parallel()

	svc, _, primary, legend := newBoundService(t, nil)

	svc.RestoreSelection([]domain.Identity{pointID("East", "Q1"), pointID("West", "Q2")})

	assert.True(t, svc.HasSelection())
	assert.True(t, primary[0].Selected)
	assert.True(t, primary[3].Selected)
	assert.False(t, primary[1].Selected)
	assertSynced(t, svc, primary, legend)

	svc.ClearSelection()
	assert.False(t, svc.HasSelection())
}

func TestRestoreSelectionKeepsSequenceVerbatim(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newBoundService(t, nil)

	dup := pointID("East", "Q1")
	svc.RestoreSelection([]domain.Identity{dup, dup})

	assert.Len(t, svc.SelectedIDs(), 2, "no deduplication on restore")
}

func TestApplySelectionFromFilter(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{ids: []domain.Identity{seriesID("Q2")}}
	svc := NewService(nil, resolver, nil)
	behavior := &fakeBehavior{}
	primary := points(pointID("East", "Q1"), pointID("East", "Q2"))
	svc.Bind(primary, behavior, nil, nil)

	svc.ApplySelectionFromFilter(struct{}{})

	assert.False(t, primary[0].Selected)
	assert.True(t, primary[1].Selected)
}

func TestHostPushRestoresSelection(t *testing.T) {
	t.Parallel()

	bridge := &fakeBridge{}
	svc, _, primary, _ := newBoundService(t, bridge)
	require.NotNil(t, bridge.callback, "engine should register for host pushes")

	bridge.selected = []domain.Identity{pointID("West", "Q1")}
	bridge.callback()

	assert.True(t, primary[2].Selected)
	assert.False(t, primary[0].Selected)
	assert.True(t, svc.HasSelection())
}

func TestOverrideSelectionFromData(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil)
	behavior := &fakeBehavior{}

	primary := points(pointID("East", "Q1"), pointID("East", "Q2"), pointID("West", "Q1"))
	primary[1].Selected = true
	primary[2].Selected = true

	svc.Bind(primary, behavior, nil, &BindOptions{OverrideSelectionFromData: true})

	ids := svc.SelectedIDs()
	require.Len(t, ids, 2, "reseed takes the pre-flagged identities in order")
	assert.True(t, ids[0].Includes(primary[1].Identity))
	assert.True(t, ids[1].Includes(primary[2].Identity))
	assertSynced(t, svc, primary)
}

func TestInvertedModeEmptySelection(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	svc.SetSelectionModeInverted(true)
	require.True(t, svc.IsSelectionModeInverted())

	// Pre-set flags must be forced false when nothing is excluded
	primary[0].Selected = true
	svc.RestoreSelection(nil)

	for _, d := range primary {
		assert.False(t, d.Selected, "inverted-empty forces everything unselected")
	}
}

func TestInvertedModeNonEmptySelection(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	svc.SetSelectionModeInverted(true)

	primary[3].Selected = true // stale flag outside the stored set
	svc.RestoreSelection([]domain.Identity{seriesID("Q1")})

	assert.True(t, primary[0].Selected)
	assert.True(t, primary[2].Selected)
	assert.False(t, primary[1].Selected)
	assert.False(t, primary[3].Selected, "stale flags failing the test are reset")
}

func TestInvertedModeLeavesLegendAlone(t *testing.T) {
	t.Parallel()

	svc, _, primary, legend := newBoundService(t, nil)
	svc.SetSelectionModeInverted(true)

	// The legend item's own identity is in the stored set, yet inverted
	// sync only ever touches the primary pool. Longstanding asymmetry,
	// kept on purpose.
	svc.RestoreSelection([]domain.Identity{legend[0].Identity})

	assert.True(t, primary[0].Selected)
	assert.False(t, legend[0].Selected, "inverted sync never updates the legend pool")
}

func TestApplySelectionStateToData(t *testing.T) {
	t.Parallel()

	svc, _, primary, _ := newBoundService(t, nil)
	svc.HandleSelection(primary[0], false)

	fresh := points(pointID("East", "Q1"), pointID("North", "Q1"))
	anySelected := svc.ApplySelectionStateToData(fresh, false)

	assert.True(t, anySelected)
	assert.True(t, fresh[0].Selected)
	assert.False(t, fresh[1].Selected)
}

func TestApplySelectionStateToDataWithHighlights(t *testing.T) {
	t.Parallel()

	bridge := &fakeBridge{}
	svc, _, primary, _ := newBoundService(t, bridge)
	svc.HandleSelection(primary[0], false)
	require.True(t, svc.HasSelection())

	fresh := points(pointID("East", "Q1"), pointID("West", "Q2"))
	anySelected := svc.ApplySelectionStateToData(fresh, true)

	assert.False(t, anySelected, "highlight data wipes the prior selection first")
	assert.Empty(t, svc.SelectedIDs())
	assert.Positive(t, bridge.clears, "host selection set is wiped too")
	for _, d := range fresh {
		assert.False(t, d.Selected)
	}
}

func TestLabelsPoolSyncsIndependently(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil)
	behavior := &fakeBehavior{}

	// Only the labels pool is bound
	labels := points(pointID("East", "Q1"), pointID("West", "Q1"))
	svc.Bind(labels, behavior, nil, &BindOptions{IsLabels: true})

	svc.RestoreSelection([]domain.Identity{seriesID("Q1")})

	assert.True(t, labels[0].Selected)
	assert.True(t, labels[1].Selected)
}

func TestBindReplacesPool(t *testing.T) {
	t.Parallel()

	svc, behavior, primary, _ := newBoundService(t, nil)
	svc.HandleSelection(primary[0], false)

	replacement := points(pointID("East", "Q1"), pointID("South", "Q3"))
	svc.Bind(replacement, behavior, nil, nil)

	// The new pool is synced against the surviving selection on bind
	assert.True(t, replacement[0].Selected)
	assert.False(t, replacement[1].Selected)
}
