// Package store holds the live application state and elements and records
// undo checkpoints. It is the only place state is written.
package store

import (
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
)

// Action tells the store how to treat an applied change.
type Action int

const (
	// None applies the change without touching the checkpoint baseline.
	None Action = iota
	// Capture records the change as a distinct undoable step.
	Capture
	// Update moves the baseline to the new state without recording a step,
	// so the change never becomes undoable.
	Update
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Capture:
		return "capture"
	case Update:
		return "update"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the store contents.
type Snapshot struct {
	AppState appstate.State
	Elements []scene.Element
}

// Checkpoint is one recorded undoable step.
type Checkpoint struct {
	Before Snapshot
	After  Snapshot
}

// Listener is called after every applied change with the new state.
type Listener func(appstate.State, []scene.Element)

// Store is not safe for concurrent use; it belongs to the update loop.
type Store struct {
	state       appstate.State
	elements    []scene.Element
	baseline    Snapshot
	checkpoints []Checkpoint
	listeners   []Listener
}

// New creates a store seeded with the given state and elements.
func New(state appstate.State, elements []scene.Element) *Store {
	s := &Store{
		state:    state,
		elements: scene.Clone(elements),
	}
	s.baseline = s.snapshot()
	return s
}

// AppState returns the current state.
func (s *Store) AppState() appstate.State {
	return s.state
}

// Elements returns a copy of the current elements.
func (s *Store) Elements() []scene.Element {
	return scene.Clone(s.elements)
}

// Apply merges patch into the live state, replaces the elements when
// elements is non-nil, and applies the store action.
func (s *Store) Apply(patch appstate.Patch, elements []scene.Element, action Action) {
	s.state = s.state.Merge(patch)
	if elements != nil {
		s.elements = scene.Clone(elements)
	}

	switch action {
	case Capture:
		after := s.snapshot()
		s.checkpoints = append(s.checkpoints, Checkpoint{Before: s.baseline, After: after})
		s.baseline = after
	case Update:
		s.baseline = s.snapshot()
	case None:
	}

	for _, l := range s.listeners {
		l(s.state, s.Elements())
	}
}

// Checkpoints returns the number of recorded undoable steps.
func (s *Store) Checkpoints() int {
	return len(s.checkpoints)
}

// LastCheckpoint returns the most recent checkpoint, if any.
func (s *Store) LastCheckpoint() (Checkpoint, bool) {
	if len(s.checkpoints) == 0 {
		return Checkpoint{}, false
	}
	return s.checkpoints[len(s.checkpoints)-1], true
}

// Subscribe registers a listener for applied changes.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{AppState: s.state, Elements: scene.Clone(s.elements)}
}
