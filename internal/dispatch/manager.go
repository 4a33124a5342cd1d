// Package dispatch executes registered actions against the store.
package dispatch

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/analytics"
	"github.com/llehouerou/drawbar/internal/store"
)

// Manager resolves actions, runs them and commits their results.
// It is driven from the update loop and is not safe for concurrent use.
type Manager struct {
	registry *action.Registry
	store    *store.Store
	host     action.Host
	props    action.Props
	sink     analytics.Sink
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithHost sets the host services passed to perform.
func WithHost(h action.Host) Option {
	return func(m *Manager) { m.host = h }
}

// WithProps sets the host component properties seen by predicates.
func WithProps(p action.Props) Option {
	return func(m *Manager) { m.props = p }
}

// WithSink sets the analytics sink.
func WithSink(s analytics.Sink) Option {
	return func(m *Manager) { m.sink = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New creates a manager over the given registry and store.
func New(registry *action.Registry, st *store.Store, opts ...Option) *Manager {
	m := &Manager{
		registry: registry,
		store:    st,
		sink:     analytics.Nop{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "dispatch")
	return m
}

// SetHost replaces the host services. The app sets itself once its
// widgets exist.
func (m *Manager) SetHost(h action.Host) {
	m.host = h
}

// Registry returns the action registry.
func (m *Manager) Registry() *action.Registry {
	return m.registry
}

// ExecuteAction runs the referenced action. A rejected guard is a silent
// no-op; errors from perform are returned as-is and nothing is committed.
func (m *Manager) ExecuteAction(ref action.Ref, source action.Source, formData any) error {
	a, err := m.registry.Resolve(ref)
	if err != nil {
		return err
	}

	if !m.enabled(a) {
		m.logger.Debug("action skipped", "action", a.Name, "source", source)
		return nil
	}

	state := m.store.AppState()
	result, err := a.Perform(m.store.Elements(), state, formData, m.host)
	if err != nil {
		m.logger.Debug("action failed", "action", a.Name, "source", source, "error", err)
		return err
	}
	if !result.Changed {
		m.logger.Debug("action handled without change", "action", a.Name, "source", source)
		return nil
	}

	m.store.Apply(result.AppState, result.Elements, result.StoreAction)
	m.logger.Debug("action committed",
		"action", a.Name,
		"source", source,
		"store_action", result.StoreAction.String(),
	)

	if a.TrackEvent.ShouldTrack(m.store.AppState()) {
		m.sink.Track(context.Background(), analytics.Event{
			Category: a.TrackEvent.Category,
			Action:   a.TrackEvent.Action,
			Label:    string(source),
		})
	}
	return nil
}

// IsEnabled reports whether the referenced action currently applies.
// Unknown actions are disabled.
func (m *Manager) IsEnabled(ref action.Ref) bool {
	a, err := m.registry.Resolve(ref)
	if err != nil {
		return false
	}
	return m.enabled(a)
}

// IsChecked reports the toggle state of the referenced action.
func (m *Manager) IsChecked(ref action.Ref) bool {
	a, err := m.registry.Resolve(ref)
	if err != nil || a.Checked == nil {
		return false
	}
	return a.Checked(m.store.AppState())
}

// HandleKey runs the enabled action whose key test matches msg. Among
// several matches the highest KeyPriority wins, then registration order.
// It reports whether an action claimed the key.
func (m *Manager) HandleKey(msg tea.KeyMsg) (bool, error) {
	var match *action.Action
	for _, a := range m.registry.All() {
		if a.KeyTest == nil || !a.KeyTest(msg) || !m.enabled(a) {
			continue
		}
		if match == nil || a.KeyPriority > match.KeyPriority {
			match = a
		}
	}
	if match == nil {
		return false, nil
	}
	return true, m.ExecuteAction(action.ByRef(match), action.SourceKeyboard, nil)
}

func (m *Manager) enabled(a *action.Action) bool {
	state := m.store.AppState()
	if state.ViewModeEnabled && !a.ViewMode {
		return false
	}
	if a.Predicate == nil {
		return true
	}
	return a.Predicate(m.store.Elements(), state, m.props)
}
