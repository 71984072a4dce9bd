package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"tcgen/internal/config"
)

// Scanner expands command-line paths into the list of source files to scan
type Scanner struct {
	config   *config.Config
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner using the config's extensions and ignored directories
func NewScanner(cfg *config.Config) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range cfg.PathsToIgnore {
		skipMap[dir] = true
	}
	return &Scanner{config: cfg, skipDirs: skipMap}
}

// Expand keeps files as given and replaces each directory by the matching
// source files below it, in lexical order. Argument order is preserved.
func (s *Scanner) Expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		found, err := s.walk(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func (s *Scanner) walk(root string) ([]string, error) {
	var sources []string

	root = filepath.Clean(root)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return &ReadError{Path: path, Err: err}
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if s.IsSkippedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.config.HasExtension(d.Name()) {
			sources = append(sources, path)
		}
		return nil
	})

	return sources, err
}

// IsSkippedDir reports whether a directory name is excluded from scanning.
// Hidden directories are always skipped.
func (s *Scanner) IsSkippedDir(name string) bool {
	return strings.HasPrefix(name, ".") || s.skipDirs[name]
}

// HasExtension reports whether a file name has one of the configured source extensions
func (s *Scanner) HasExtension(name string) bool {
	return s.config.HasExtension(name)
}
