// Package app is the root bubbletea model. It owns the widgets, routes
// input and keeps the widgets in step with the store.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/actions"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/dispatch"
	"github.com/llehouerou/drawbar/internal/export"
	"github.com/llehouerou/drawbar/internal/keymap"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/state"
	"github.com/llehouerou/drawbar/internal/store"
	"github.com/llehouerou/drawbar/internal/ui/confirm"
	"github.com/llehouerou/drawbar/internal/ui/helpbindings"
	"github.com/llehouerou/drawbar/internal/ui/sidebar"
	"github.com/llehouerou/drawbar/internal/ui/styles"
	"github.com/llehouerou/drawbar/internal/ui/toolbar"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

// Deps are the services the app is built from.
type Deps struct {
	Store    *store.Store
	Manager  *dispatch.Manager
	Bindings []keymap.Binding // nil uses keymap.Default
	Exporter *export.Exporter // nil disables export
	State    state.Interface  // nil disables persistence
	Logger   *slog.Logger
	Size     toolbutton.Size
	Frame    time.Duration
}

// Model is the root application model.
type Model struct {
	store   *store.Store
	manager *dispatch.Manager
	keys    *keymap.Resolver
	logger  *slog.Logger

	toolbar *toolbar.Model
	sidebar *sidebar.Model
	confirm *confirm.Model
	help    *helpbindings.Model
	theme   *styles.Theme

	status    string
	statusErr bool
	width     int
	height    int
}

// New builds the app and registers itself as the action host.
func New(d Deps) *Model {
	bindings := d.Bindings
	if bindings == nil {
		bindings = keymap.Default
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := keymap.NewResolver(bindings)
	st := d.Store.AppState()
	theme := styles.Named(st.Theme)

	m := &Model{
		store:   d.Store,
		manager: d.Manager,
		keys:    keys,
		logger:  logger.With("component", "app"),
		sidebar: sidebar.New(),
		confirm: confirm.New(theme),
		help:    helpbindings.New(bindings, theme),
		theme:   theme,
	}
	d.Manager.SetHost(m)

	opts := []toolbar.Option{
		toolbar.WithKeys(keys),
		toolbar.WithFrame(d.Frame),
		toolbar.WithLogger(logger),
	}
	if d.Size != "" {
		opts = append(opts, toolbar.WithSize(d.Size))
	}
	if d.Exporter != nil {
		opts = append(opts, toolbar.WithExporter(d.Exporter))
	}
	m.toolbar = toolbar.New(d.Manager, d.Store, opts...)
	m.toolbar.SetFocused(true)

	if d.State != nil {
		persistPreferences(d.Store, d.State)
	}
	d.Store.Subscribe(func(appstate.State, []scene.Element) { m.sync() })
	m.sync()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.toolbar.Init()
}

// Widget implements action.Host.
func (m *Model) Widget(id string) action.Widget {
	if id == actions.ChatSearchInputID {
		return m.sidebar.Widget()
	}
	return nil
}

// Status returns the status line text and whether it reports an error.
func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}

var _ action.Host = (*Model)(nil)

// Close unmounts the toolbar controls.
func (m *Model) Close() {
	m.toolbar.Close()
}

// sync brings the widgets in line with the store.
func (m *Model) sync() {
	st := m.store.AppState()
	m.theme = styles.Named(st.Theme)
	m.confirm.SetTheme(m.theme)
	m.help.SetTheme(m.theme)
	m.toolbar.Sync()
	m.sidebar.Sync(st)

	switch {
	case st.DialogOpen(appstate.DialogClearCanvas):
		if !m.confirm.Active() {
			m.confirm.Show("Clear canvas", "This will clear the whole canvas. Are you sure?", nil)
		}
	case m.confirm.Active():
		m.confirm.Dismiss()
	}
	m.layout()
}
