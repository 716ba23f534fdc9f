package main

import (
	"fmt"

	"github.com/intentguard/igk/internal/workspace"
)

// resolveWorkspace honors an explicit --workspace flag, falling back to
// workspace.Resolve's walk-up-from-cwd search.
func resolveWorkspace() (string, error) {
	if flag := GetWorkspaceFlag(); flag != "" {
		return flag, nil
	}
	root, err := workspace.Resolve("")
	if err != nil {
		return "", fmt.Errorf("resolve workspace root: %w", err)
	}
	return root, nil
}
