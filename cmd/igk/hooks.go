package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/intentguard/igk/embedded"
)

// HookEntry is one Claude Code hook command entry.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// HookGroup binds a tool-name matcher to the hooks that fire for it.
type HookGroup struct {
	Matcher string      `json:"matcher,omitempty"`
	Hooks   []HookEntry `json:"hooks"`
}

// HooksConfig is the subset of Claude Code's settings.json hooks block the
// kernel cares about: the two events its pipeline can gate on.
type HooksConfig struct {
	PreToolUse  []HookGroup `json:"PreToolUse,omitempty"`
	PostToolUse []HookGroup `json:"PostToolUse,omitempty"`
}

// ClaudeSettings is the top-level settings.json shape. Other preserves
// every key the kernel doesn't understand so installing its own hooks
// block never clobbers a human's existing settings.
type ClaudeSettings struct {
	Hooks *HooksConfig   `json:"hooks,omitempty"`
	Other map[string]any `json:"-"`
}

const igkInvokeMarker = "igk invoke"

var (
	hooksDryRun bool
	hooksForce  bool
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Generate and install Claude Code hook wiring",
	Long: `Generate and install the Claude Code settings.json hooks block whose
PreToolUse/PostToolUse commands shell out to "igk invoke", the concrete
realization of wiring the kernel into a live agent session.`,
}

var hooksInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Print the generated hooks block without installing it",
	RunE:  runHooksInit,
}

var hooksInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Merge the generated hooks block into ~/.claude/settings.json",
	RunE:  runHooksInstall,
}

var hooksShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show installed hook event coverage",
	RunE:  runHooksShow,
}

func init() {
	rootCmd.AddCommand(hooksCmd)
	hooksCmd.AddCommand(hooksInitCmd, hooksInstallCmd, hooksShowCmd)
	hooksInstallCmd.Flags().BoolVar(&hooksDryRun, "dry-run", false, "Print the merged settings without writing them")
	hooksInstallCmd.Flags().BoolVar(&hooksForce, "force", false, "Overwrite a non-igk hook group sharing the same matcher")
}

// generateHooksConfig returns the canonical PreToolUse/PostToolUse groups
// from the manifest embedded in the binary (embedded.HooksJSON): one
// matcher covering every tool name, each firing "igk invoke". Falling back
// to a hardcoded literal here would let the on-disk manifest and the
// binary's actual behavior drift; the embed is the single source of truth.
func generateHooksConfig() *HooksConfig {
	var manifest struct {
		Hooks HooksConfig `json:"hooks"`
	}
	if err := json.Unmarshal(embedded.HooksJSON, &manifest); err != nil {
		panic(fmt.Sprintf("hooks: embedded manifest is malformed: %v", err))
	}
	return &manifest.Hooks
}

func runHooksInit(cmd *cobra.Command, args []string) error {
	cfg := generateHooksConfig()
	data, err := json.MarshalIndent(map[string]*HooksConfig{"hooks": cfg}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hooks config: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func claudeSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

func loadClaudeSettings(path string) (*ClaudeSettings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ClaudeSettings{Other: map[string]any{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	settings := &ClaudeSettings{Other: raw}
	if hooksRaw, ok := raw["hooks"]; ok {
		hooksData, err := json.Marshal(hooksRaw)
		if err != nil {
			return nil, fmt.Errorf("re-marshal hooks block: %w", err)
		}
		var hc HooksConfig
		if err := json.Unmarshal(hooksData, &hc); err != nil {
			return nil, fmt.Errorf("parse hooks block: %w", err)
		}
		settings.Hooks = &hc
		delete(settings.Other, "hooks")
	}
	return settings, nil
}

// mergeHookGroups keeps every group not managed by igk, then appends the
// freshly generated igk-managed groups, so re-running install is
// idempotent instead of duplicating entries on every call. With force, a
// surviving group whose matcher collides with one of igk's own ("*") is
// also dropped, since two matching "*" groups would otherwise both fire on
// every tool call.
func mergeHookGroups(existing, generated []HookGroup, force bool) []HookGroup {
	generatedMatchers := make(map[string]bool, len(generated))
	for _, g := range generated {
		generatedMatchers[g.Matcher] = true
	}

	kept := make([]HookGroup, 0, len(existing))
	for _, g := range existing {
		if groupIsIGKManaged(g) {
			continue
		}
		if force && generatedMatchers[g.Matcher] {
			continue
		}
		kept = append(kept, g)
	}
	return append(kept, generated...)
}

func groupIsIGKManaged(g HookGroup) bool {
	for _, h := range g.Hooks {
		if strings.Contains(h.Command, igkInvokeMarker) {
			return true
		}
	}
	return false
}

func writeClaudeSettings(path string, settings *ClaudeSettings) error {
	out := map[string]any{}
	for k, v := range settings.Other {
		out[k] = v
	}
	out["hooks"] = settings.Hooks

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-settings-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename settings into place: %w", err)
	}
	success = true
	return nil
}

func backupClaudeSettings(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s for backup: %w", path, err)
	}
	backupPath := fmt.Sprintf("%s.backup.%d", path, time.Now().Unix())
	return os.WriteFile(backupPath, data, 0o644)
}

func runHooksInstall(cmd *cobra.Command, args []string) error {
	path, err := claudeSettingsPath()
	if err != nil {
		return err
	}

	settings, err := loadClaudeSettings(path)
	if err != nil {
		return err
	}

	generated := generateHooksConfig()
	merged := &HooksConfig{}
	if settings.Hooks != nil {
		merged.PreToolUse = mergeHookGroups(settings.Hooks.PreToolUse, generated.PreToolUse, hooksForce)
		merged.PostToolUse = mergeHookGroups(settings.Hooks.PostToolUse, generated.PostToolUse, hooksForce)
	} else {
		merged = generated
	}
	settings.Hooks = merged

	if hooksDryRun || GetDryRun() {
		out := map[string]any{}
		for k, v := range settings.Other {
			out[k] = v
		}
		out["hooks"] = settings.Hooks
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal settings preview: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if err := backupClaudeSettings(path); err != nil {
		return fmt.Errorf("backup existing settings: %w", err)
	}
	if err := writeClaudeSettings(path, settings); err != nil {
		return err
	}
	fmt.Printf("Installed igk hooks into %s\n", path)
	return nil
}

func runHooksShow(cmd *cobra.Command, args []string) error {
	path, err := claudeSettingsPath()
	if err != nil {
		return err
	}
	settings, err := loadClaudeSettings(path)
	if err != nil {
		return err
	}

	if settings.Hooks == nil {
		fmt.Println("No hooks installed.")
		return nil
	}

	printCoverage := func(event string, groups []HookGroup) {
		igkCount := 0
		for _, g := range groups {
			if groupIsIGKManaged(g) {
				igkCount++
			}
		}
		fmt.Printf("%-12s %d group(s), %d igk-managed\n", event, len(groups), igkCount)
	}
	printCoverage("PreToolUse", settings.Hooks.PreToolUse)
	printCoverage("PostToolUse", settings.Hooks.PostToolUse)
	return nil
}
