// Package workspace locates the root of the project an agent session is
// operating in, the directory all other paths (intent registry, trace
// ledger, bypass list) are resolved against.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerDir is the directory whose presence identifies a workspace root.
const MarkerDir = ".orchestration"

// ErrNotFound is returned when no workspace root can be located.
var ErrNotFound = errors.New("workspace: no .orchestration or .git directory found above the start directory")

// Resolve walks up from startDir looking for a MarkerDir or a ".git"
// directory, preferring the former when both are present at the same
// level. An empty startDir defaults to the current working directory.
// Falling back to ".git" lets a freshly cloned repo that hasn't run "igk
// hooks init" yet still resolve a root, since the kernel can create
// .orchestration lazily once it knows where to put it.
func Resolve(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		startDir = wd
	}

	dir := startDir
	for {
		if isDir(filepath.Join(dir, MarkerDir)) {
			return dir, nil
		}
		if isDir(filepath.Join(dir, ".git")) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ConfigDir returns the MarkerDir path under root, creating it if missing.
func ConfigDir(root string) (string, error) {
	dir := filepath.Join(root, MarkerDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
