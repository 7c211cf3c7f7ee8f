package level

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce   sync.Once
	builtinLevels map[string]Level
	builtinErr    error
)

func loadBuiltins() {
	builtinLevels = make(map[string]Level)

	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		builtinErr = fmt.Errorf("reading builtin levels: %w", err)
		return
	}
	for _, entry := range entries {
		name := path.Join("builtin", entry.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			builtinErr = fmt.Errorf("reading %s: %w", name, err)
			return
		}
		lvl, err := Parse(data)
		if err != nil {
			builtinErr = fmt.Errorf("parsing %s: %w", name, err)
			return
		}
		lvl.FilePath = name
		builtinLevels[lvl.ID] = lvl
	}
}

// Builtin returns an embedded level by ID.
func Builtin(id string) (Level, error) {
	builtinOnce.Do(loadBuiltins)
	if builtinErr != nil {
		return Level{}, builtinErr
	}
	lvl, ok := builtinLevels[id]
	if !ok {
		return Level{}, fmt.Errorf("level not found: %s", id)
	}
	return lvl, nil
}

// BuiltinIDs returns the IDs of the embedded levels in sorted order.
func BuiltinIDs() []string {
	builtinOnce.Do(loadBuiltins)
	ids := make([]string, 0, len(builtinLevels))
	for id := range builtinLevels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
