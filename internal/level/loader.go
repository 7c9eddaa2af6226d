package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads custom level files from a directory. Builtin levels always
// remain available; loaded levels are additions, sorted by ID for
// deterministic ordering.
type Loader struct {
	Root string
}

// NewLoader creates a level loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all .yaml/.yml level files.
// Files that fail to parse or validate are skipped.
func (l *Loader) LoadAll() ([]*Level, error) {
	var levels []*Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lv, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, lv)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single YAML level file.
func (l *Loader) LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a YAML level definition.
func Parse(data []byte) (*Level, error) {
	var lv Level
	if err := yaml.Unmarshal(data, &lv); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}
	if !lv.Valid() {
		return nil, fmt.Errorf("level: %q layout has %d cells, want rows*cols = %d",
			lv.ID, len(lv.Layout), lv.Rows*lv.Cols)
	}
	return &lv, nil
}
