package state

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/drawbar/internal/appstate"
	dbutil "github.com/llehouerou/drawbar/internal/db"
)

// Preferences are the parts of the app state restored on startup.
type Preferences struct {
	Theme           string
	GridModeEnabled bool
	ZenModeEnabled  bool
	ActiveTool      string
	ToolLocked      bool
	SceneName       string
}

// PreferencesFrom extracts the persisted fields from s.
func PreferencesFrom(s appstate.State) Preferences {
	return Preferences{
		Theme:           s.Theme,
		GridModeEnabled: s.GridModeEnabled,
		ZenModeEnabled:  s.ZenModeEnabled,
		ActiveTool:      s.ActiveTool.Type,
		ToolLocked:      s.ActiveTool.Locked,
		SceneName:       s.Name,
	}
}

// Patch returns the app state patch restoring p. Empty fields are left out.
func (p Preferences) Patch() appstate.Patch {
	patch := appstate.Patch{
		GridModeEnabled: appstate.Set(p.GridModeEnabled),
		ZenModeEnabled:  appstate.Set(p.ZenModeEnabled),
	}
	if p.Theme != "" {
		patch.Theme = appstate.Set(p.Theme)
	}
	if p.ActiveTool != "" {
		patch.ActiveTool = appstate.Set(appstate.Tool{Type: p.ActiveTool, Locked: p.ToolLocked})
	}
	if p.SceneName != "" {
		patch.Name = appstate.Set(p.SceneName)
	}
	return patch
}

func getPreferences(db *sql.DB) (*Preferences, error) {
	row := db.QueryRow(`
		SELECT theme, grid_mode, zen_mode, active_tool, tool_locked, scene_name
		FROM preferences WHERE id = 1
	`)

	var p Preferences
	var activeTool, sceneName sql.NullString

	err := row.Scan(&p.Theme, &p.GridModeEnabled, &p.ZenModeEnabled, &activeTool, &p.ToolLocked, &sceneName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	p.ActiveTool = dbutil.NullStringValue(activeTool)
	p.SceneName = dbutil.NullStringValue(sceneName)

	return &p, nil
}

func savePreferences(db *sql.DB, p Preferences) error {
	_, err := db.Exec(`
		INSERT INTO preferences (id, theme, grid_mode, zen_mode, active_tool, tool_locked, scene_name)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			theme = excluded.theme,
			grid_mode = excluded.grid_mode,
			zen_mode = excluded.zen_mode,
			active_tool = excluded.active_tool,
			tool_locked = excluded.tool_locked,
			scene_name = excluded.scene_name
	`, p.Theme, dbutil.BoolInt(p.GridModeEnabled), dbutil.BoolInt(p.ZenModeEnabled),
		dbutil.NullString(p.ActiveTool), dbutil.BoolInt(p.ToolLocked), dbutil.NullString(p.SceneName))

	return err
}
