package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chartgrip/internal/bridge"
	"chartgrip/internal/config"
	"chartgrip/internal/domain"
	"chartgrip/internal/eventbus"
	"chartgrip/internal/filters"
	"chartgrip/internal/identity"
	"chartgrip/internal/interactivity"
	"chartgrip/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	engine    *interactivity.Service
	behavior  *ChartBehavior
	host      *bridge.HostStore
	filterMgr *filters.Manager

	dataset     *domain.Dataset
	bars        []*views.BarPoint
	legendItems []*views.LegendPoint
	labelItems  []*views.LabelPoint

	styles *views.Styles
	keys   KeyMap
	help   help.Model

	journal    *Journal
	journalOps *JournalOps

	nameInput textinput.Model
	naming    bool
	lastView  string

	cursor      int
	multiSelect bool
	status      string
	width       int
	height      int
	inPagerMode bool
}

// NewModel creates a new UI model and binds the three display pools to
// the engine
func NewModel(cfg *config.Config, ds *domain.Dataset, engine *interactivity.Service,
	host *bridge.HostStore, filterMgr *filters.Manager, bus eventbus.EventBus,
	journal *Journal, journalOps *JournalOps) *Model {

	bars, legendItems, labelItems := views.BuildPoints(ds)
	behavior := NewChartBehavior()

	nameInput := textinput.New()
	nameInput.Placeholder = "view name"
	nameInput.CharLimit = 40

	m := &Model{
		bus:         bus,
		config:      cfg,
		engine:      engine,
		behavior:    behavior,
		host:        host,
		filterMgr:   filterMgr,
		dataset:     ds,
		bars:        bars,
		legendItems: legendItems,
		labelItems:  labelItems,
		styles:      views.NewStyles(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		journal:     journal,
		journalOps:  journalOps,
		nameInput:   nameInput,
	}

	// Bind the pools. Panes that are disabled in config never bind, so
	// the engine simply skips them during sync.
	engine.Bind(views.BarDataPoints(bars), behavior, nil, nil)
	if cfg.UISettings.ShowLegend {
		engine.Bind(views.LegendDataPoints(legendItems), behavior, nil,
			&interactivity.BindOptions{IsLegend: true})
	}
	if cfg.UISettings.ShowLabels {
		engine.Bind(views.LabelDataPoints(labelItems), behavior, nil,
			&interactivity.BindOptions{IsLabels: true})
	}

	if cfg.UISettings.InvertedMode {
		engine.SetSelectionModeInverted(true)
	}
	m.multiSelect = cfg.UISettings.MultiSelectDefault

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case journalPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Journal pager error: %v", msg.err)
			m.status = fmt.Sprintf("pager error: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.naming {
			return m.updateNaming(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.bars)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.bars) {
			m.behavior.Select(m.bars[m.cursor].Point, m.multiSelect)
			m.status = fmt.Sprintf("%d selected", len(m.engine.SelectedIDs()))
		}

	case key.Matches(msg, m.keys.SeriesSelect):
		if m.cursor < len(m.bars) {
			series := m.bars[m.cursor].Series
			for _, item := range m.legendItems {
				if item.Series == series {
					m.behavior.Select(item.Point, m.multiSelect)
					m.status = fmt.Sprintf("series %s selected", series)
					break
				}
			}
		}

	case key.Matches(msg, m.keys.MultiToggle):
		m.multiSelect = !m.multiSelect
		if m.multiSelect {
			m.status = "multi-select on"
		} else {
			m.status = "multi-select off"
		}

	case key.Matches(msg, m.keys.Clear):
		m.behavior.Clear()
		m.status = "selection cleared"

	case key.Matches(msg, m.keys.Invert):
		inverted := !m.engine.IsSelectionModeInverted()
		m.engine.SetSelectionModeInverted(inverted)
		if inverted {
			m.status = "inverted selection mode"
		} else {
			m.status = "normal selection mode"
		}

	case key.Matches(msg, m.keys.SaveView):
		if !m.engine.HasSelection() {
			m.status = "nothing selected to save"
			break
		}
		m.naming = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ApplyView):
		m.applySavedView()

	case key.Matches(msg, m.keys.PersistView):
		// Hand the current filter back to the host; the host's push
		// flows into the engine through its change callback
		m.behavior.PersistFilter()
		m.status = "host filter applied"

	case key.Matches(msg, m.keys.HostPush):
		if m.cursor < len(m.bars) {
			category := m.bars[m.cursor].Category
			id := identity.NewBuilder().
				WithCategory(category).
				WithMeasure(m.dataset.Measure).
				Create()
			m.host.PushSelection([]domain.Identity{id})
			m.status = fmt.Sprintf("host pushed category %s", category)
		}

	case key.Matches(msg, m.keys.Journal):
		if !m.inPagerMode {
			return m, m.showJournal()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		m.naming = false
		m.nameInput.Blur()
		if name != "" {
			m.saveView(name)
		}
		return m, nil
	case "esc":
		m.naming = false
		m.nameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) saveView(name string) {
	filter := m.filterMgr.FromSelection(name, m.engine.SelectedIDs())
	path, err := m.filterMgr.SaveView(filter)
	if err != nil {
		log.Printf("Failed to save view %q: %v", name, err)
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}

	// The host keeps the filter so it can reapply it on request
	m.host.StoreFilter(filter)
	m.lastView = name
	m.status = fmt.Sprintf("view %q saved", name)
	m.bus.Publish(eventbus.ViewSavedEvent{Name: name, Path: path})
}

func (m *Model) applySavedView() {
	name := m.lastView
	if name == "" {
		names, err := m.filterMgr.ListViews()
		if err != nil || len(names) == 0 {
			m.status = "no saved views"
			return
		}
		name = names[0]
	}

	filter, err := m.filterMgr.LoadView(name)
	if err != nil {
		log.Printf("Failed to load view %q: %v", name, err)
		m.status = fmt.Sprintf("load failed: %v", err)
		return
	}

	m.engine.ApplySelectionFromFilter(filter)
	m.status = fmt.Sprintf("view %q applied", name)
	m.bus.Publish(eventbus.SelectionFilterAppliedEvent{ViewName: name})
}

func (m *Model) showJournal() tea.Cmd {
	m.inPagerMode = true
	content := m.journal.Content()
	return func() tea.Msg {
		return journalPagerMsg{err: m.journalOps.ShowInPager(content)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	// Consume any pending redraw request; bubbletea re-renders on every
	// update anyway, the flag only matters for external observers
	m.behavior.ConsumeRender()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("chartgrip"))
	b.WriteString("\n")

	chart := views.RenderChart(m.dataset, m.bars, m.cursor, m.engine.HasSelection(), m.styles)
	panes := chart
	if m.config.UISettings.ShowLegend {
		legend := views.RenderLegend(m.legendItems, m.styles)
		panes = lipgloss.JoinHorizontal(lipgloss.Top, chart, " ", legend)
	}
	b.WriteString(panes)
	b.WriteString("\n")

	if m.config.UISettings.ShowLabels {
		b.WriteString(views.RenderLabels(m.labelItems, m.styles))
		b.WriteString("\n")
	}

	if m.naming {
		b.WriteString("save view as: ")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) statusLine() string {
	var flags []string
	if m.multiSelect {
		flags = append(flags, m.styles.Mode.Render("[MULTI]"))
	}
	if m.engine.IsSelectionModeInverted() {
		flags = append(flags, m.styles.Mode.Render("[INVERTED]"))
	}

	count := len(m.engine.SelectedIDs())
	parts := []string{fmt.Sprintf("%d selected", count)}
	if len(flags) > 0 {
		parts = append(parts, strings.Join(flags, " "))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.styles.Status.Render(strings.Join(parts, "  ·  "))
}
