// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SavePreferences(prefs Preferences)
	GetPreferences() (*Preferences, error)
	SaveScene(elements []Element) error
	GetScene() ([]Element, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
