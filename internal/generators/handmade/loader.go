// Package handmade loads hand-drawn levels from YAML files and registers
// each one as a fixed-layout generator.
package handmade

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/registry"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering, with the errors
// of any files that could not be loaded.
func (l *Loader) LoadAll() ([]Level, error) {
	var (
		levels []Level
		errs   []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, errors.Join(errs...)
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// Generator always returns its level.
type Generator struct {
	level Level
}

func (g Generator) ID() string    { return g.level.ID }
func (g Generator) Title() string { return g.level.Name }

func (g Generator) Generate(registry.Options) (level.State, error) {
	return g.level.State, nil
}

// RegisterAll loads every level under root and registers it by its ID.
// Levels whose ID is already taken are reported and skipped.
func RegisterAll(root string) ([]string, error) {
	levels, loadErr := NewLoader(root).LoadAll()
	if levels == nil && loadErr != nil {
		return nil, loadErr
	}

	errs := []error{loadErr}
	var ids []string
	for _, lvl := range levels {
		if registry.Exists(lvl.ID) {
			errs = append(errs, fmt.Errorf("%s: generator %q already registered", lvl.FilePath, lvl.ID))
			continue
		}
		registry.Register(lvl.ID, func() registry.Generator { return Generator{level: lvl} })
		ids = append(ids, lvl.ID)
	}
	return ids, errors.Join(errs...)
}
