// SPDX-License-Identifier: MPL-2.0

// Package fspath provides the path resolution helpers pomkit relies on for
// stable module identifiers: canonicalization (absolute, symlink-free paths)
// and slash-normalized relativization.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"
)

// Canonicalize returns the absolute, symlink-resolved form of path. When the
// final element does not exist yet, its parent directory is canonicalized and
// the base name rejoined, so paths to files about to be created still
// canonicalize. Relative-path resolution against a merely cleaned path can
// silently diverge under symlinks; resolving them first keeps module
// identifiers stable across environments.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("canonicalizing %s: %w", abs, err)
	}

	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", fmt.Errorf("canonicalizing %s: %w", filepath.Dir(abs), err)
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}

// CanonicalDir returns the canonical directory containing path.
func CanonicalDir(path string) (string, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(canonical), nil
}

// RelSlash returns the relative path from base to target using forward
// slashes regardless of platform, so persisted module identifiers stay
// portable.
func RelSlash(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("relativizing %s against %s: %w", target, base, err)
	}
	return filepath.ToSlash(rel), nil
}
