// Package state persists preferences and the scene between runs.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "drawbar"
	dbFileName   = "drawbar.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	debounce  time.Duration
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Preferences
	onError   func(error)
	closed    bool
	saving    sync.WaitGroup // in-flight debounced save

	save func(*sql.DB, Preferences) error
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the database at path.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, debounce: saveDebounce, save: savePreferences}, nil
}

// OnSaveError registers a callback for failed background saves.
func (m *Manager) OnSaveError(fn func(error)) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.onError = fn
}

// Close stops the debounce timer, waits for a save already in progress,
// writes any pending preferences and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.closed = true
	m.saveMu.Unlock()

	m.saving.Wait()
	if pending != nil {
		_ = m.save(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) GetPreferences() (*Preferences, error) {
	return getPreferences(m.db)
}

// SavePreferences stores prefs after a quiet period; only the latest
// value within the window is written.
func (m *Manager) SavePreferences(prefs Preferences) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.closed {
		return
	}

	m.pending = &prefs

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		onError := m.onError
		if pending != nil {
			m.saving.Add(1)
		}
		m.saveMu.Unlock()

		if pending == nil {
			return
		}
		defer m.saving.Done()
		if err := m.save(m.db, *pending); err != nil && onError != nil {
			onError(err)
		}
	})
}

func (m *Manager) GetScene() ([]Element, error) {
	return getScene(m.db)
}

func (m *Manager) SaveScene(elements []Element) error {
	return saveScene(m.db, elements)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
