package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
)

func TestApply_CaptureRecordsOneCheckpoint(t *testing.T) {
	s := New(appstate.Default(), nil)

	s.Apply(appstate.Patch{GridModeEnabled: appstate.Set(true)}, nil, Capture)

	assert.True(t, s.AppState().GridModeEnabled)
	assert.Equal(t, 1, s.Checkpoints())

	cp, ok := s.LastCheckpoint()
	require.True(t, ok)
	assert.False(t, cp.Before.AppState.GridModeEnabled)
	assert.True(t, cp.After.AppState.GridModeEnabled)
}

func TestApply_NoneRecordsNothing(t *testing.T) {
	s := New(appstate.Default(), nil)

	s.Apply(appstate.Patch{GridModeEnabled: appstate.Set(true)}, nil, None)

	assert.True(t, s.AppState().GridModeEnabled)
	assert.Equal(t, 0, s.Checkpoints())
}

func TestApply_NoneChangesFoldIntoNextCapture(t *testing.T) {
	s := New(appstate.Default(), nil)

	s.Apply(appstate.Patch{Theme: appstate.Set(appstate.ThemeDark)}, nil, None)
	s.Apply(appstate.Patch{ZenModeEnabled: appstate.Set(true)}, nil, Capture)

	cp, ok := s.LastCheckpoint()
	require.True(t, ok)
	assert.Equal(t, appstate.ThemeLight, cp.Before.AppState.Theme)
	assert.Equal(t, appstate.ThemeDark, cp.After.AppState.Theme)
}

func TestApply_UpdateMovesBaselineWithoutCheckpoint(t *testing.T) {
	s := New(appstate.Default(), nil)

	s.Apply(appstate.Patch{Theme: appstate.Set(appstate.ThemeDark)}, nil, Update)
	assert.Equal(t, 0, s.Checkpoints())

	s.Apply(appstate.Patch{ZenModeEnabled: appstate.Set(true)}, nil, Capture)
	cp, ok := s.LastCheckpoint()
	require.True(t, ok)
	// the theme change was folded into the baseline, not the step
	assert.Equal(t, appstate.ThemeDark, cp.Before.AppState.Theme)
}

func TestApply_Elements(t *testing.T) {
	initial := []scene.Element{{ID: "a"}}
	s := New(appstate.Default(), initial)

	s.Apply(appstate.Patch{}, nil, None)
	assert.Len(t, s.Elements(), 1, "nil elements leave the collection alone")

	s.Apply(appstate.Patch{}, []scene.Element{}, None)
	assert.Empty(t, s.Elements())

}

func TestNew_CopiesInitialElements(t *testing.T) {
	initial := []scene.Element{{ID: "a"}}
	s := New(appstate.Default(), initial)

	initial[0].ID = "mutated"

	assert.Equal(t, "a", s.Elements()[0].ID)
}

func TestElements_ReturnsCopy(t *testing.T) {
	s := New(appstate.Default(), []scene.Element{{ID: "a"}})
	els := s.Elements()
	els[0].ID = "b"
	assert.Equal(t, "a", s.Elements()[0].ID)
}

func TestSubscribe(t *testing.T) {
	s := New(appstate.Default(), nil)
	var calls int
	var last appstate.State
	s.Subscribe(func(st appstate.State, _ []scene.Element) {
		calls++
		last = st
	})

	s.Apply(appstate.Patch{Name: appstate.Set("board")}, nil, None)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "board", last.Name)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "capture", Capture.String())
	assert.Equal(t, "update", Update.String())
	assert.Equal(t, "unknown", Action(42).String())
}
