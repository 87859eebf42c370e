package widget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opendatadetector/cmlc/internal/catalog"
	"github.com/opendatadetector/cmlc/internal/clipboard"
	"github.com/opendatadetector/cmlc/internal/config"
	"github.com/opendatadetector/cmlc/internal/estimate"
	"github.com/opendatadetector/cmlc/internal/selection"
	"github.com/opendatadetector/cmlc/internal/snippet"
)

// widgetState represents the current state of the configurator's state machine.
type widgetState int

const (
	stateLoading widgetState = iota // Catalog load in progress
	stateReady                      // Catalog available, facets interactive
	stateDone                       // User quit
)

// pane identifies the facet pane that currently has focus.
type pane int

const (
	panePileup pane = iota
	paneChannel
	paneObjects
	paneEvents
	paneCount
)

// CatalogProvider supplies the dataset catalog. Implemented by
// *catalog.Loader; tests substitute a stub.
type CatalogProvider interface {
	Load(ctx context.Context) *catalog.Catalog
}

// catalogMsg is sent when the async catalog load completes.
type catalogMsg struct {
	catalog *catalog.Catalog
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// ackExpiredMsg clears the transient copy acknowledgment.
type ackExpiredMsg struct {
	id uint64 // Must match current ackID to be accepted
}

// initMsg is sent by Init() to trigger the catalog load via Update(),
// ensuring state mutations are visible to the Bubble Tea runtime.
type initMsg struct{}

// Model is the Bubble Tea model for the dataset configurator TUI.
// It must be exported so that cmd/cmlc can use it.
type Model struct {
	state   widgetState
	catalog *catalog.Catalog
	sel     selection.Selections

	focus   pane
	cursors [3]int // Per-pane cursor for pileup/channel/objects

	datasetID string
	copyAck   time.Duration
	copied    bool
	copyErr   error
	ackID     uint64 // Monotonic counter for stale ack detection

	provider CatalogProvider
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	width  int // Terminal width
	height int // Terminal height
}

// NewModel creates a configurator Model seeded from cfg's defaults.
func NewModel(cfg *config.Config, provider CatalogProvider) Model {
	sel := selection.Selections{
		Pileup:  cfg.Defaults.Pileup,
		Objects: append([]string(nil), cfg.Defaults.Objects...),
	}
	if cfg.Defaults.Channel != "" {
		sel.Channels = []string{cfg.Defaults.Channel}
	}
	sel.Events = cfg.Defaults.Events
	sel.SetEventIndex(sel.EventIndex()) // snap to the nearest tier

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		state:     stateLoading,
		sel:       sel,
		datasetID: cfg.Catalog.DatasetID,
		copyAck:   time.Duration(cfg.UI.CopyAckMs) * time.Millisecond,
		provider:  provider,
		spinner:   sp,
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
}

// Selections returns the current selection state.
func (m Model) Selections() selection.Selections {
	return m.sel
}

// Init implements tea.Model. It sends an initMsg so that the catalog load
// is triggered through Update, where state mutations are properly captured.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return initMsg{} },
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogMsg:
		return m.handleCatalog(msg)

	case copiedMsg:
		return m.handleCopied(msg)

	case ackExpiredMsg:
		if msg.id == m.ackID {
			m.copied = false
			m.copyErr = nil
		}
		return m, nil

	case initMsg:
		return m, m.loadCatalog()

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// loadCatalog resolves the catalog off the Update loop.
func (m Model) loadCatalog() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		return catalogMsg{catalog: provider.Load(context.Background())}
	}
}

// handleCatalog installs the loaded catalog and reconciles the seeded
// selections against it, so selected values are always drawn from the
// discovered options.
func (m Model) handleCatalog(msg catalogMsg) (tea.Model, tea.Cmd) {
	cat := msg.catalog
	m.catalog = cat
	m.state = stateReady

	if !cat.HasPileup(m.sel.Pileup) && len(cat.Pileups) > 0 {
		m.sel.Pileup = cat.Pileups[0].ID
	}
	if len(m.sel.Channels) > 0 && !cat.HasProcess(m.sel.Channels[0]) {
		m.sel.ClearChannels()
		if len(cat.Processes) > 0 {
			m.sel.SelectChannel(cat.Processes[0].ID)
		}
	}
	known := make(map[string]bool, len(cat.Objects))
	for _, o := range cat.Objects {
		known[o.ID] = true
	}
	kept := m.sel.Objects[:0:0]
	for _, id := range m.sel.Objects {
		if known[id] {
			kept = append(kept, id)
		}
	}
	m.sel.Objects = kept

	m.syncCursors()
	return m, nil
}

// syncCursors points each option cursor at the currently selected value.
func (m *Model) syncCursors() {
	m.cursors[panePileup] = indexOf(m.catalog.Pileups, m.sel.Pileup)
	if len(m.sel.Channels) > 0 {
		m.cursors[paneChannel] = indexOf(m.catalog.Processes, m.sel.Channels[0])
	}
}

func indexOf(opts []catalog.Option, id string) int {
	for i, o := range opts {
		if o.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.state = stateDone
		return m, tea.Quit
	}
	if m.state != stateReady {
		// Facets are not interactive until the catalog arrived.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextPane):
		m.focus = (m.focus + 1) % paneCount

	case key.Matches(msg, m.keys.PrevPane):
		m.focus = (m.focus + paneCount - 1) % paneCount

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Left):
		m.sel.SetEventIndex(m.sel.EventIndex() - 1)

	case key.Matches(msg, m.keys.Right):
		m.sel.SetEventIndex(m.sel.EventIndex() + 1)

	case key.Matches(msg, m.keys.Select):
		m.applySelect()

	case key.Matches(msg, m.keys.SelectAll):
		m.sel.SelectAllObjects(m.catalog.ObjectIDs())

	case key.Matches(msg, m.keys.SelectNone):
		m.sel.DeselectAllObjects()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySnippet()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveCursor moves the focused pane's cursor by delta, clamped to the
// pane's option list. The events pane has no cursor.
func (m *Model) moveCursor(delta int) {
	opts := m.paneOptions(m.focus)
	if opts == nil {
		return
	}
	c := m.cursors[m.focus] + delta
	if c < 0 {
		c = 0
	}
	if c > len(opts)-1 {
		c = len(opts) - 1
	}
	m.cursors[m.focus] = c
}

// paneOptions returns the option list for an option pane, or nil for the
// events pane.
func (m Model) paneOptions(p pane) []catalog.Option {
	switch p {
	case panePileup:
		return m.catalog.Pileups
	case paneChannel:
		return m.catalog.Processes
	case paneObjects:
		return m.catalog.Objects
	}
	return nil
}

// applySelect commits the option under the cursor in the focused pane.
func (m *Model) applySelect() {
	opts := m.paneOptions(m.focus)
	if len(opts) == 0 {
		return
	}
	id := opts[m.cursors[m.focus]].ID
	switch m.focus {
	case panePileup:
		m.sel.SelectPileup(id)
	case paneChannel:
		m.sel.SelectChannel(id)
	case paneObjects:
		m.sel.ToggleObject(id)
	}
}

// copySnippet writes the current load command to the system clipboard.
func (m Model) copySnippet() tea.Cmd {
	text := snippet.Generate(m.sel, m.datasetID)
	return func() tea.Msg {
		return copiedMsg{err: clipboard.Write(text)}
	}
}

func (m Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	m.copied = msg.err == nil
	m.copyErr = msg.err
	m.ackID++
	id := m.ackID
	return m, tea.Tick(m.copyAck, func(time.Time) tea.Msg {
		return ackExpiredMsg{id: id}
	})
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	estimateStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	snippetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ackStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.state == stateDone {
		return ""
	}
	if m.state == stateLoading {
		return m.spinner.View() + dimStyle.Render(" Loading dataset catalog...") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("ColliderML dataset configurator"))
	b.WriteRune('\n')
	if m.catalog.SizesFallback || m.catalog.FacetsFallback {
		b.WriteString(noticeStyle.Render("(offline: using built-in catalog)"))
		b.WriteRune('\n')
	}
	b.WriteRune('\n')

	b.WriteString(m.viewOptionPane(panePileup, "Pileup"))
	b.WriteString(m.viewOptionPane(paneChannel, "Physics channel"))
	b.WriteString(m.viewOptionPane(paneObjects, "Object types"))
	b.WriteString(m.viewEventsPane())

	b.WriteString(m.viewEstimate())
	b.WriteString(m.viewSnippet())

	b.WriteString(m.help.View(m.keys))
	b.WriteRune('\n')
	return b.String()
}

// viewOptionPane renders one option facet with its cursor and markers.
func (m Model) viewOptionPane(p pane, title string) string {
	var b strings.Builder
	heading := title
	if m.focus == p {
		b.WriteString(focusStyle.Render("▸ " + heading))
	} else {
		b.WriteString(labelStyle.Render("  " + heading))
	}
	b.WriteRune('\n')

	for i, opt := range m.paneOptions(p) {
		cursor := "  "
		if m.focus == p && m.cursors[p] == i {
			cursor = "> "
		}
		mark := m.optionMark(p, opt.ID)
		line := fmt.Sprintf("  %s%s %s", cursor, mark, opt.Label)
		if m.isSelected(p, opt.ID) {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteRune('\n')
	}
	b.WriteRune('\n')
	return b.String()
}

// optionMark returns the selection marker for an option: radio glyphs for
// the exclusive facets, checkboxes for objects.
func (m Model) optionMark(p pane, id string) string {
	sel := m.isSelected(p, id)
	if p == paneObjects {
		if sel {
			return "[x]"
		}
		return "[ ]"
	}
	if sel {
		return "(•)"
	}
	return "( )"
}

func (m Model) isSelected(p pane, id string) bool {
	switch p {
	case panePileup:
		return m.sel.Pileup == id
	case paneChannel:
		return len(m.sel.Channels) > 0 && m.sel.Channels[0] == id
	case paneObjects:
		return m.sel.HasObject(id)
	}
	return false
}

// viewEventsPane renders the event-count tier selector.
func (m Model) viewEventsPane() string {
	var b strings.Builder
	if m.focus == paneEvents {
		b.WriteString(focusStyle.Render("▸ Events per channel"))
	} else {
		b.WriteString(labelStyle.Render("  Events per channel"))
	}
	b.WriteRune('\n')

	var parts []string
	for i, tier := range selection.EventScale {
		label := fmt.Sprintf("%d", tier)
		if i == m.sel.EventIndex() {
			parts = append(parts, selectedStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	b.WriteString("    " + strings.Join(parts, " "))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) viewEstimate() string {
	gb := estimate.GB(m.sel, m.catalog.Sizes)
	return labelStyle.Render("  Estimated download: ") +
		estimateStyle.Render(estimate.Format(gb)) + "\n\n"
}

func (m Model) viewSnippet() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("  Load command"))
	if m.copied {
		b.WriteString("  " + ackStyle.Render("✓ copied"))
	} else if m.copyErr != nil {
		b.WriteString("  " + errorStyle.Render("copy failed"))
	}
	b.WriteRune('\n')

	width := m.width - 4
	if width <= 0 {
		width = 76
	}
	for _, line := range strings.Split(snippet.Generate(m.sel, m.datasetID), "\n") {
		b.WriteString("    " + snippetStyle.Render(truncate(line, width)))
		b.WriteRune('\n')
	}
	b.WriteRune('\n')
	return b.String()
}
