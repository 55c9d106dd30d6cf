// Package validation provides input validation for image references, resource names and build paths.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscapesRoot is returned when a path resolves outside its root directory.
var ErrPathEscapesRoot = errors.New("path escapes root directory")

// ValidatePathWithinRoot validates that a path stays within the root directory.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	_, err := RelativeWithinRoot(rootDir, fullPath)
	return err
}

// RelativeWithinRoot returns fullPath relative to rootDir in slash form.
// Both paths are made absolute and their directories resolved through symlinks first;
// the last element of fullPath is kept as named. A path outside rootDir, or rootDir
// itself, yields ErrPathEscapesRoot.
func RelativeWithinRoot(rootDir, fullPath string) (string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", rootDir, err)
	}
	absRoot = resolveExisting(absRoot)

	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", fullPath, err)
	}
	absPath = filepath.Join(resolveExisting(filepath.Dir(absPath)), filepath.Base(absPath))

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, fullPath)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, fullPath)
	}

	return filepath.ToSlash(rel), nil
}

// ValidateBuildPaths checks that the context directory exists, and that the
// Dockerfile exists as a regular file inside it.
func ValidateBuildPaths(contextDir, dockerfile string) error {
	if contextDir == "" {
		return fmt.Errorf("context directory cannot be empty")
	}
	info, err := os.Stat(contextDir)
	if err != nil {
		return fmt.Errorf("context directory %s: %w", contextDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("context directory %s is not a directory", contextDir)
	}

	if dockerfile == "" {
		return fmt.Errorf("dockerfile cannot be empty")
	}
	info, err = os.Stat(dockerfile)
	if err != nil {
		return fmt.Errorf("dockerfile %s: %w", dockerfile, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("dockerfile %s is not a regular file", dockerfile)
	}

	if err := ValidatePathWithinRoot(contextDir, dockerfile); err != nil {
		return fmt.Errorf("the Dockerfile must exist within the context directory: %w", err)
	}

	return nil
}

// resolveExisting evaluates symlinks in the longest existing prefix of an absolute path
// and appends the remainder unchanged.
func resolveExisting(path string) string {
	rest := ""
	cur := path
	for {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			return filepath.Join(resolved, rest)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return path
		}
		rest = filepath.Join(filepath.Base(cur), rest)
		cur = parent
	}
}
