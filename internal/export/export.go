// Package export writes scenes to disk.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/scene"
)

// Extension is appended to exported file names.
const Extension = ".drawbar.json"

const formatVersion = 1

// File is the on-disk export format.
type File struct {
	Type     string          `json:"type"`
	Version  int             `json:"version"`
	Name     string          `json:"name"`
	Exported time.Time       `json:"exported"`
	Elements []scene.Element `json:"elements"`
}

// Done reports a finished export.
type Done struct {
	Path     string
	Elements int
	Bytes    int64
}

// Size formats Bytes for display, e.g. "1.2 KiB".
func (d Done) Size() string {
	return humanize.IBytes(uint64(max(d.Bytes, 0))) //nolint:gosec // clamped non-negative
}

// Exporter writes scenes into a directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// New creates an exporter writing into dir.
func New(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// Write exports the non-deleted elements under name. A cancelled context
// yields an abort error and leaves no file behind.
func (e *Exporter) Write(ctx context.Context, name string, elements []scene.Element) (Done, error) {
	if err := ctx.Err(); err != nil {
		return Done{}, action.Abort(err)
	}

	visible := scene.NonDeleted(elements)
	if visible == nil {
		visible = []scene.Element{}
	}
	data, err := json.MarshalIndent(File{
		Type:     "drawbar",
		Version:  formatVersion,
		Name:     name,
		Exported: e.now().UTC(),
		Elements: visible,
	}, "", "  ")
	if err != nil {
		return Done{}, fmt.Errorf("encode scene: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Done{}, fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, ".export-*")
	if err != nil {
		return Done{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return Done{}, fmt.Errorf("write scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Done{}, fmt.Errorf("write scene: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Done{}, action.Abort(err)
	}

	path := filepath.Join(e.dir, FileName(name))
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Done{}, fmt.Errorf("move export into place: %w", err)
	}
	return Done{Path: path, Elements: len(visible), Bytes: int64(len(data))}, nil
}

// FileName turns a scene name into a safe file name.
func FileName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}
	base := b.String()
	if base == "" {
		base = "scene"
	}
	return base + Extension
}
