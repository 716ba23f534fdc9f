// Package config provides configuration management for the kernel.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (IGK_*)
// 3. Project config (<workspace>/.orchestration/config.yaml)
// 4. Home config (~/.igk/config.yaml)
// 5. Defaults
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all kernel configuration.
type Config struct {
	// Output controls the default output format (table, json, yaml).
	Output string `yaml:"output" json:"output"`

	// Verbose enables verbose diagnostic logging.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Registry settings: where the intent registry, trace ledger, and
	// bypass list live, relative to the workspace root unless absolute.
	Registry RegistryConfig `yaml:"registry" json:"registry"`

	// Authorization settings for the Authorization Hook's approval flow.
	Authorization AuthorizationConfig `yaml:"authorization" json:"authorization"`
}

// RegistryConfig holds the on-disk locations the kernel's components own.
type RegistryConfig struct {
	// IntentsFile is the Intent Store's registry file.
	IntentsFile string `yaml:"intents_file" json:"intents_file"`

	// TraceFile is the Trace Ledger's append-only JSONL file.
	TraceFile string `yaml:"trace_file" json:"trace_file"`

	// BypassListFile is the Authorization Hook's `.intentignore` file.
	BypassListFile string `yaml:"bypass_list_file" json:"bypass_list_file"`
}

// AuthorizationConfig holds Authorization Hook-specific settings.
type AuthorizationConfig struct {
	// ModalTimeoutSeconds bounds how long the host UI waits for an
	// approval response before treating it as a dismissal. 0 means no
	// timeout. The Authorization Hook's engine-level Approve contract never
	// enforces this itself (§5: "the host UI owns the modal timeout") — it
	// is read by cmd/igk's TerminalApprover, which passes it to
	// RunApprovalModal as the deadline for its bubbletea dialog.
	ModalTimeoutSeconds int `yaml:"modal_timeout_seconds" json:"modal_timeout_seconds"`
}

// Default config values (used in resolution and validation).
const (
	defaultOutput = "table"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output:  defaultOutput,
		Verbose: false,
		Registry: RegistryConfig{
			IntentsFile:    ".orchestration/active_intents.yaml",
			TraceFile:      ".orchestration/agent_trace.jsonl",
			BypassListFile: ".orchestration/.intentignore",
		},
		Authorization: AuthorizationConfig{
			ModalTimeoutSeconds: 0,
		},
	}
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults.
func Load(workspaceRoot string, flagOverrides *Config) (*Config, error) {
	cfg := Default()

	if homeConfig, _ := loadFromPath(homeConfigPath()); homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	if projectConfig, _ := loadFromPath(projectConfigPath(workspaceRoot)); projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	return cfg, nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".igk", "config.yaml")
}

// projectConfigPath returns the project config path, honoring an explicit
// IGK_CONFIG override.
func projectConfigPath(workspaceRoot string) string {
	if override := strings.TrimSpace(os.Getenv("IGK_CONFIG")); override != "" {
		return override
	}
	if workspaceRoot == "" {
		return ""
	}
	return filepath.Join(workspaceRoot, ".orchestration", "config.yaml")
}

// loadFromPath loads config from a YAML file.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("IGK_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("IGK_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("IGK_INTENTS_FILE"); v != "" {
		cfg.Registry.IntentsFile = v
	}
	if v := os.Getenv("IGK_TRACE_FILE"); v != "" {
		cfg.Registry.TraceFile = v
	}
	if v := os.Getenv("IGK_BYPASS_LIST_FILE"); v != "" {
		cfg.Registry.BypassListFile = v
	}
	if v := os.Getenv("IGK_MODAL_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Authorization.ModalTimeoutSeconds = n
		}
	}
	return cfg
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeInt overwrites dst with src when src is non-zero.
func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.Output, src.Output)
	if src.Verbose {
		dst.Verbose = true
	}

	mergeStr(&dst.Registry.IntentsFile, src.Registry.IntentsFile)
	mergeStr(&dst.Registry.TraceFile, src.Registry.TraceFile)
	mergeStr(&dst.Registry.BypassListFile, src.Registry.BypassListFile)
	mergeInt(&dst.Authorization.ModalTimeoutSeconds, src.Authorization.ModalTimeoutSeconds)

	return dst
}

// Source represents where a config value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceHome    Source = "~/.igk/config.yaml"
	SourceProject Source = ".orchestration/config.yaml"
	SourceEnv     Source = "environment"
	SourceFlag    Source = "flag"
)

// getEnvString returns the value and whether the env var was set.
func getEnvString(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

// getEnvBool returns the boolean value and whether it was truthy.
func getEnvBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "true" || v == "1" {
		return true, true
	}
	return false, false
}

// resolveStringField resolves a string through the precedence chain.
// Returns the resolved value and its source.
func resolveStringField(home, project, env, flag, def string) Resolved {
	result := Resolved{Value: def, Source: SourceDefault}
	if home != "" {
		result = Resolved{Value: home, Source: SourceHome}
	}
	if project != "" {
		result = Resolved{Value: project, Source: SourceProject}
	}
	if env != "" {
		result = Resolved{Value: env, Source: SourceEnv}
	}
	if flag != "" {
		result = Resolved{Value: flag, Source: SourceFlag}
	}
	return result
}

// ResolvedConfig shows config values with their sources, for "igk config
// show --resolve".
type ResolvedConfig struct {
	Output         Resolved `json:"output"`
	Verbose        Resolved `json:"verbose"`
	IntentsFile    Resolved `json:"intents_file"`
	TraceFile      Resolved `json:"trace_file"`
	BypassListFile Resolved `json:"bypass_list_file"`
}

// Resolved is a config value tagged with the precedence tier it came from.
type Resolved struct {
	Value  interface{} `json:"value"`
	Source Source      `json:"source"`
}

// Resolve returns configuration with source tracking, using the same
// precedence chain as Load: flags > env > project > home > defaults.
func Resolve(workspaceRoot, flagOutput string, flagVerbose bool) *ResolvedConfig {
	def := Default()

	homeConfig, _ := loadFromPath(homeConfigPath())
	projectConfig, _ := loadFromPath(projectConfigPath(workspaceRoot))

	var homeOutput, homeIntents, homeTrace, homeBypass string
	var homeVerbose bool
	if homeConfig != nil {
		homeOutput, homeVerbose = homeConfig.Output, homeConfig.Verbose
		homeIntents, homeTrace, homeBypass = homeConfig.Registry.IntentsFile, homeConfig.Registry.TraceFile, homeConfig.Registry.BypassListFile
	}

	var projectOutput, projectIntents, projectTrace, projectBypass string
	var projectVerbose bool
	if projectConfig != nil {
		projectOutput, projectVerbose = projectConfig.Output, projectConfig.Verbose
		projectIntents, projectTrace, projectBypass = projectConfig.Registry.IntentsFile, projectConfig.Registry.TraceFile, projectConfig.Registry.BypassListFile
	}

	envOutput, _ := getEnvString("IGK_OUTPUT")
	envVerbose, envVerboseSet := getEnvBool("IGK_VERBOSE")
	envIntents, _ := getEnvString("IGK_INTENTS_FILE")
	envTrace, _ := getEnvString("IGK_TRACE_FILE")
	envBypass, _ := getEnvString("IGK_BYPASS_LIST_FILE")

	rc := &ResolvedConfig{
		Output:         resolveStringField(homeOutput, projectOutput, envOutput, flagOutput, def.Output),
		Verbose:        Resolved{Value: false, Source: SourceDefault},
		IntentsFile:    resolveStringField(homeIntents, projectIntents, envIntents, "", def.Registry.IntentsFile),
		TraceFile:      resolveStringField(homeTrace, projectTrace, envTrace, "", def.Registry.TraceFile),
		BypassListFile: resolveStringField(homeBypass, projectBypass, envBypass, "", def.Registry.BypassListFile),
	}

	if homeVerbose {
		rc.Verbose = Resolved{Value: true, Source: SourceHome}
	}
	if projectVerbose {
		rc.Verbose = Resolved{Value: true, Source: SourceProject}
	}
	if envVerboseSet && envVerbose {
		rc.Verbose = Resolved{Value: true, Source: SourceEnv}
	}
	if flagVerbose {
		rc.Verbose = Resolved{Value: true, Source: SourceFlag}
	}

	return rc
}
