// Package toolbar lays out the toolbar controls and routes keyboard and
// mouse input to them.
package toolbar

import (
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/export"
	"github.com/llehouerou/drawbar/internal/keymap"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/ui"
	"github.com/llehouerou/drawbar/internal/ui/styles"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

// ErrNoExporter is returned by the export button when no exporter is set.
var ErrNoExporter = errors.New("toolbar: export is not configured")

// Dispatcher runs and inspects registered actions.
type Dispatcher interface {
	toolbutton.Executor
	IsEnabled(ref action.Ref) bool
	IsChecked(ref action.Ref) bool
}

// Scene is the read side of the store.
type Scene interface {
	AppState() appstate.State
	Elements() []scene.Element
}

// Option configures a Model.
type Option func(*Model)

// WithExporter enables the export button.
func WithExporter(e *export.Exporter) Option {
	return func(m *Model) { m.exporter = e }
}

// WithKeys sets the key resolver used for hints and tool shortcuts.
func WithKeys(r *keymap.Resolver) Option {
	return func(m *Model) {
		if r != nil {
			m.keys = r
		}
	}
}

// WithSize sets the control size.
func WithSize(s toolbutton.Size) Option {
	return func(m *Model) { m.size = s }
}

// WithFrame sets the radio pointer-reset delay.
func WithFrame(d time.Duration) Option {
	return func(m *Model) { m.frame = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the toolbar row.
type Model struct {
	ui.Base
	controls []*toolbutton.Model
	toolOf   map[string]string // control id -> tool type
	focus    int
	pressed  int
	row      int

	dispatcher Dispatcher
	scene      Scene
	exporter   *export.Exporter
	keys       *keymap.Resolver
	size       toolbutton.Size
	frame      time.Duration
	theme      *styles.Theme
	logger     *slog.Logger
}

// New builds the toolbar and syncs it with the current state.
func New(d Dispatcher, sc Scene, opts ...Option) *Model {
	m := &Model{
		dispatcher: d,
		scene:      sc,
		keys:       keymap.NewResolver(keymap.Default),
		size:       toolbutton.SizeMedium,
		frame:      toolbutton.DefaultFrame,
		pressed:    -1,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "toolbar")
	m.controls = m.build()
	m.Sync()
	return m
}

// Init starts controls that are created busy.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.controls))
	for _, c := range m.controls {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

// Controls returns the controls in display order.
func (m *Model) Controls() []*toolbutton.Model { return m.controls }

// Control returns the control with the given id, or nil.
func (m *Model) Control(id string) *toolbutton.Model {
	for _, c := range m.controls {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// SetRow sets the screen row the toolbar is drawn on, for hit-testing.
func (m *Model) SetRow(y int) { m.row = y }

// Busy reports whether any control has a task in flight.
func (m *Model) Busy() bool {
	for _, c := range m.controls {
		if c.Loading() {
			return true
		}
	}
	return false
}

// CancelAll aborts every in-flight task. It reports whether any was running.
func (m *Model) CancelAll() bool {
	cancelled := false
	for _, c := range m.controls {
		if c.Loading() {
			c.Cancel()
			cancelled = true
		}
	}
	return cancelled
}

// Close unmounts all controls.
func (m *Model) Close() {
	for _, c := range m.controls {
		c.Unmount()
	}
}

// Sync refreshes selection, checked and disabled flags from the store.
func (m *Model) Sync() {
	st := m.scene.AppState()
	m.theme = styles.Named(st.Theme)
	for _, c := range m.controls {
		p := c.Props()
		switch {
		case p.Kind == toolbutton.Radio && p.TestID == toolbutton.ChatTestID:
			p.Checked = st.SidebarOpenOn(appstate.ChatTab)
			p.Selected = p.Checked
			p.Disabled = !m.dispatcher.IsEnabled(action.ByName(chatAction))
		case p.Kind == toolbutton.Radio:
			p.Checked = st.ActiveTool.Type == m.toolOf[p.ID]
			p.Selected = p.Checked
			p.Disabled = !m.dispatcher.IsEnabled(action.ByName(toolAction))
		case p.ID == ExportID:
			p.Hidden = st.ZenModeEnabled
			p.Disabled = m.exporter == nil || p.Hidden
		default:
			ref := action.ByName(p.ID)
			p.Checked = m.dispatcher.IsChecked(ref)
			p.Disabled = !m.dispatcher.IsEnabled(ref)
		}
		c.SetProps(p)
	}
	m.clampFocus()
}
