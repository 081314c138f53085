// Package storage persists the employee roster as a single
// comma-separated line in a text file.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jsalter/emp/internal/cli"
)

// Storage provides access to a roster data file.
type Storage struct {
	path string
}

// Open resolves the roster file location for the given directory and
// returns a Storage for it. Resolution order: the override path (from
// the --file flag), then data_file from .empconfig.yaml, then the
// default employees.txt. A missing config file is not an error.
func Open(dir string, override string) (*Storage, error) {
	if override != "" {
		return &Storage{path: override}, nil
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	path := cfg.DataFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return &Storage{path: path}, nil
}

// Path returns the resolved roster file path.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the roster file into an ordered list of trimmed, non-empty
// names. A missing file yields an empty roster, not an error. Tokens
// that trim to empty are dropped.
func (s *Storage) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &cli.IOError{Op: "read", Path: s.path, Err: err}
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, nil
	}

	var names []string
	for _, token := range strings.Split(content, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		names = append(names, token)
	}
	return names, nil
}

// Save writes the roster back as a single comma-joined line, replacing
// any previous content. Names are joined with no trailing separator and
// no escaping, so a name containing a literal comma will be read back
// as two records. The write goes to a temp file in the same directory
// which is then renamed over the target, so a crash mid-write cannot
// leave a truncated roster.
func (s *Storage) Save(names []string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &cli.IOError{Op: "write", Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()

	_, err = tmp.WriteString(strings.Join(names, ","))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpPath, s.path)
	}
	if err != nil {
		os.Remove(tmpPath)
		return &cli.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
