package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/drawbar/internal/db"
	"github.com/llehouerou/drawbar/internal/scene"
)

// Element is a persisted scene element.
type Element = scene.Element

func getScene(db *sql.DB) ([]Element, error) {
	rows, err := db.Query(`
		SELECT id, type, x, y, width, height, text, is_deleted, version
		FROM scene_elements ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []Element
	for rows.Next() {
		var e Element
		var text sql.NullString
		if err := rows.Scan(&e.ID, &e.Type, &e.X, &e.Y, &e.Width, &e.Height, &text, &e.IsDeleted, &e.Version); err != nil {
			return nil, err
		}
		e.Text = dbutil.NullStringValue(text)
		elements = append(elements, e)
	}
	return elements, rows.Err()
}

// saveScene replaces the stored scene atomically.
func saveScene(db *sql.DB, elements []Element) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM scene_elements`); err != nil {
			return err
		}
		for i, e := range elements {
			_, err := tx.Exec(`
				INSERT INTO scene_elements (position, id, type, x, y, width, height, text, is_deleted, version)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, i, e.ID, string(e.Type), e.X, e.Y, e.Width, e.Height,
				dbutil.NullString(e.Text), dbutil.BoolInt(e.IsDeleted), e.Version)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
