// Package action defines invokable toolbar commands and the registry that
// holds them.
package action

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/store"
)

// Source identifies what triggered an action.
type Source string

const (
	SourceUI          Source = "ui"
	SourceKeyboard    Source = "keyboard"
	SourceContextMenu Source = "contextMenu"
	SourceAPI         Source = "api"
)

// Props are the host component properties predicates may consult.
// A nil field means the host leaves that setting to the user.
type Props struct {
	GridModeEnabled *bool
	ViewModeEnabled *bool
	ZenModeEnabled  *bool
	Theme           *string
}

// Widget is a rendered sub-element an action can focus.
type Widget interface {
	Focused() bool
	Focus()
	Select()
}

// Host exposes host application services to actions.
type Host interface {
	// Widget returns the rendered widget with the given id, or nil.
	Widget(id string) Widget
}

// Predicate reports whether the action applies to the current context.
type Predicate func(elements []scene.Element, state appstate.State, props Props) bool

// KeyTest reports whether a key event should trigger the action.
type KeyTest func(msg tea.KeyMsg) bool

// PerformFunc computes the effect of an action. It must not mutate its
// arguments; every change goes through the returned Result.
type PerformFunc func(elements []scene.Element, state appstate.State, formData any, host Host) (Result, error)

// Result is the outcome of a perform call.
type Result struct {
	// Changed is false when the gesture was fully handled without a state
	// transition (e.g. only focus moved).
	Changed     bool
	AppState    appstate.Patch
	Elements    []scene.Element // nil leaves elements untouched
	StoreAction store.Action
}

// NoChange is returned when perform handled the gesture without changing state.
var NoChange = Result{}

// Change builds a Result that merges patch and applies the store action.
func Change(patch appstate.Patch, sa store.Action) Result {
	return Result{Changed: true, AppState: patch, StoreAction: sa}
}

// WithElements returns a copy of r that also replaces the elements.
func (r Result) WithElements(elements []scene.Element) Result {
	r.Elements = elements
	return r
}

// TrackEvent describes the analytics event emitted after a change.
type TrackEvent struct {
	Category string
	Action   string
	// Predicate is evaluated against the post-merge state. Nil means always.
	Predicate func(state appstate.State) bool
}

// ShouldTrack reports whether the event fires for the given state.
func (t *TrackEvent) ShouldTrack(state appstate.State) bool {
	if t == nil {
		return false
	}
	return t.Predicate == nil || t.Predicate(state)
}

// Action is an immutable descriptor of a single command.
type Action struct {
	Name     string
	Label    string
	Keywords []string
	// ViewMode allows the action while the canvas is read-only.
	ViewMode bool

	Predicate Predicate
	KeyTest   KeyTest
	// KeyPriority breaks ties between actions matching the same key.
	// Higher wins; equal priorities fall back to registration order.
	KeyPriority int
	Checked     func(state appstate.State) bool
	Perform     PerformFunc
	TrackEvent  *TrackEvent
}

// Ref is either an action name or a direct reference.
type Ref struct {
	name   string
	action *Action
}

// ByName refers to a registered action by name.
func ByName(name string) Ref {
	return Ref{name: name}
}

// ByRef refers to an action definition directly.
func ByRef(a *Action) Ref {
	return Ref{action: a}
}

// Name returns the referenced action name.
func (r Ref) Name() string {
	if r.action != nil {
		return r.action.Name
	}
	return r.name
}
