package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Entry describes a discovered scene file
type Entry struct {
	Name        string
	Description string
	Path        string
}

// List scans a directory for TOML scene files and returns their
// metadata, sorted by name. Files that fail to parse are skipped and
// reported alongside the valid entries.
func List(dir string) ([]Entry, []error) {
	pattern := filepath.Join(dir, "*.toml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, []error{fmt.Errorf("scanning scene directory: %w", err)}
	}

	var entries []Entry
	var problems []error
	for _, path := range files {
		doc, err := Load(path)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", path, err))
			continue
		}

		name := doc.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), ".toml")
		}
		entries = append(entries, Entry{
			Name:        name,
			Description: doc.Description,
			Path:        path,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, problems
}
