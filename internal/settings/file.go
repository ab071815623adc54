// Package settings holds the process-wide configuration state: the
// monthly budget, the display currency, and the UI theme. Each setting
// loads once at startup, persists immediately on every change, and
// notifies registered listeners synchronously.
package settings

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Settings file keys.
const (
	KeyTheme    = "THEME"
	KeyCurrency = "CURRENCY"
	KeyBudget   = "MONTHLY_BUDGET"
)

// File is a newline-delimited KEY=VALUE settings store with
// read-merge-write semantics: saving one key rewrites the file but keeps
// every other key, including ones this program does not recognize.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// ReadAll parses the settings file into a key/value map. A missing file
// yields an empty map; malformed lines are skipped. Callers fall back to
// built-in defaults for absent keys.
func (f *File) ReadAll() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return values, fmt.Errorf("read settings file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		values[key] = strings.TrimSpace(line[idx+1:])
	}

	return values, nil
}

// Get returns the value for key, or fallback if the key is absent or the
// file cannot be read.
func (f *File) Get(key, fallback string) string {
	values, err := f.ReadAll()
	if err != nil {
		return fallback
	}
	if v, ok := values[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Set updates one key and rewrites the file, preserving all other keys
// verbatim. Keys are written in sorted order so rewrites are stable.
func (f *File) Set(key, value string) error {
	values, err := f.ReadAll()
	if err != nil {
		// Unreadable file: start over with just this key rather than
		// losing the write.
		values = map[string]string{}
	}
	values[key] = value

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, values[k])
	}

	if err := os.WriteFile(f.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
