// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package exclusion decides which files and directories are kept out of addon
// archives. Rules are a pure value so they can be exercised against synthetic
// path sets without touching a filesystem.
package exclusion

import (
	"path/filepath"
	"strings"
)

// defaults mirror the OS/tooling artifacts a Kodi repository never ships.
var (
	defaultFiles      = []string{"Thumbs.db", ".DS_Store"}
	defaultExtensions = []string{".pyc", ".pyo", ".pyd", ".db", ".swp"}
	defaultDirs       = []string{".git", ".github", "__pycache__", ".idea", ".vscode", "zips"}
)

// Rules is an immutable set of exclusion denylists. Hidden (dot-prefixed)
// files and directories are always excluded regardless of the lists.
type Rules struct {
	files map[string]struct{}
	exts  map[string]struct{}
	dirs  map[string]struct{}
}

// DefaultRules returns the built-in denylists.
func DefaultRules() Rules {
	return NewRules(defaultFiles, defaultExtensions, defaultDirs)
}

// NewRules builds a Rules value from explicit denylists. Extensions are
// matched case-insensitively and may be given with or without a leading dot.
func NewRules(files, extensions, dirs []string) Rules {
	r := Rules{
		files: make(map[string]struct{}, len(files)),
		exts:  make(map[string]struct{}, len(extensions)),
		dirs:  make(map[string]struct{}, len(dirs)),
	}
	for _, f := range files {
		r.files[f] = struct{}{}
	}
	for _, e := range extensions {
		r.exts[normalizeExt(e)] = struct{}{}
	}
	for _, d := range dirs {
		r.dirs[d] = struct{}{}
	}
	return r
}

// WithExtra returns a copy of r with additional denylist entries merged in.
func (r Rules) WithExtra(files, extensions, dirs []string) Rules {
	merged := NewRules(nil, nil, nil)
	for f := range r.files {
		merged.files[f] = struct{}{}
	}
	for e := range r.exts {
		merged.exts[e] = struct{}{}
	}
	for d := range r.dirs {
		merged.dirs[d] = struct{}{}
	}
	for _, f := range files {
		merged.files[f] = struct{}{}
	}
	for _, e := range extensions {
		merged.exts[normalizeExt(e)] = struct{}{}
	}
	for _, d := range dirs {
		merged.dirs[d] = struct{}{}
	}
	return merged
}

// ExcludeFile reports whether a file with the given path should be kept out
// of an archive. Only the final path element is considered.
func (r Rules) ExcludeFile(path string) bool {
	name := filepath.Base(path)
	if _, ok := r.files[name]; ok {
		return true
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := r.exts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ExcludeDir reports whether a directory with the given path should be pruned
// from traversal entirely.
func (r Rules) ExcludeDir(path string) bool {
	name := filepath.Base(path)
	if _, ok := r.dirs[name]; ok {
		return true
	}
	return strings.HasPrefix(name, ".")
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
