// internal/state/mock.go
package state

import "github.com/llehouerou/drawbar/internal/scene"

// Mock is a test double for Manager.
type Mock struct {
	prefs    *Preferences
	saved    []Preferences
	elements []Element
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SavePreferences(prefs Preferences) {
	m.saved = append(m.saved, prefs)
	m.prefs = &prefs
}

func (m *Mock) GetPreferences() (*Preferences, error) {
	return m.prefs, nil
}

func (m *Mock) SaveScene(elements []Element) error {
	m.elements = scene.Clone(elements)
	return nil
}

func (m *Mock) GetScene() ([]Element, error) {
	return scene.Clone(m.elements), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPreferences(prefs *Preferences) { m.prefs = prefs }

func (m *Mock) Saved() []Preferences { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
