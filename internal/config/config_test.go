package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "table" {
		t.Errorf("Default Output = %q, want %q", cfg.Output, "table")
	}
	if cfg.Verbose {
		t.Error("Default Verbose = true, want false")
	}
	if cfg.Registry.IntentsFile != ".orchestration/active_intents.yaml" {
		t.Errorf("Default Registry.IntentsFile = %q, want %q", cfg.Registry.IntentsFile, ".orchestration/active_intents.yaml")
	}
	if cfg.Registry.TraceFile != ".orchestration/agent_trace.jsonl" {
		t.Errorf("Default Registry.TraceFile = %q, want %q", cfg.Registry.TraceFile, ".orchestration/agent_trace.jsonl")
	}
	if cfg.Registry.BypassListFile != ".orchestration/.intentignore" {
		t.Errorf("Default Registry.BypassListFile = %q, want %q", cfg.Registry.BypassListFile, ".orchestration/.intentignore")
	}
	if cfg.Authorization.ModalTimeoutSeconds != 0 {
		t.Errorf("Default Authorization.ModalTimeoutSeconds = %d, want 0", cfg.Authorization.ModalTimeoutSeconds)
	}
}

func TestMerge(t *testing.T) {
	dst := Default()
	src := &Config{
		Output: "json",
		Registry: RegistryConfig{
			IntentsFile: "/custom/intents.yaml",
		},
	}

	result := merge(dst, src)

	if result.Output != "json" {
		t.Errorf("merge Output = %q, want %q", result.Output, "json")
	}
	if result.Registry.IntentsFile != "/custom/intents.yaml" {
		t.Errorf("merge Registry.IntentsFile = %q, want %q", result.Registry.IntentsFile, "/custom/intents.yaml")
	}
	// Defaults should be preserved when not overridden
	if result.Registry.TraceFile != ".orchestration/agent_trace.jsonl" {
		t.Errorf("merge preserved TraceFile = %q, want %q", result.Registry.TraceFile, ".orchestration/agent_trace.jsonl")
	}
}

func TestMerge_VerboseOverride(t *testing.T) {
	dst := Default()
	src := &Config{Verbose: true}

	result := merge(dst, src)

	if !result.Verbose {
		t.Error("merge Verbose = false, want true")
	}
}

func TestMerge_ModalTimeoutSeconds(t *testing.T) {
	dst := Default()
	src := &Config{
		Authorization: AuthorizationConfig{ModalTimeoutSeconds: 30},
	}

	result := merge(dst, src)

	if result.Authorization.ModalTimeoutSeconds != 30 {
		t.Errorf("merge Authorization.ModalTimeoutSeconds = %d, want 30", result.Authorization.ModalTimeoutSeconds)
	}
}

func TestMerge_PreservedWhenZero(t *testing.T) {
	dst := Default()
	dst.Authorization.ModalTimeoutSeconds = 15
	src := &Config{Output: "json"}

	result := merge(dst, src)

	if result.Authorization.ModalTimeoutSeconds != 15 {
		t.Errorf("merge should preserve existing ModalTimeoutSeconds, got %d", result.Authorization.ModalTimeoutSeconds)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("IGK_OUTPUT", "yaml")
	t.Setenv("IGK_VERBOSE", "true")
	t.Setenv("IGK_INTENTS_FILE", "")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	cfg := Default()
	cfg = applyEnv(cfg)

	if cfg.Output != "yaml" {
		t.Errorf("applyEnv Output = %q, want %q", cfg.Output, "yaml")
	}
	if !cfg.Verbose {
		t.Error("applyEnv Verbose = false, want true")
	}
}

func TestApplyEnv_RegistryFiles(t *testing.T) {
	t.Setenv("IGK_OUTPUT", "")
	t.Setenv("IGK_VERBOSE", "")
	t.Setenv("IGK_INTENTS_FILE", "/env/intents.yaml")
	t.Setenv("IGK_TRACE_FILE", "/env/trace.jsonl")
	t.Setenv("IGK_BYPASS_LIST_FILE", "/env/.intentignore")

	cfg := Default()
	cfg = applyEnv(cfg)

	if cfg.Registry.IntentsFile != "/env/intents.yaml" {
		t.Errorf("applyEnv Registry.IntentsFile = %q, want %q", cfg.Registry.IntentsFile, "/env/intents.yaml")
	}
	if cfg.Registry.TraceFile != "/env/trace.jsonl" {
		t.Errorf("applyEnv Registry.TraceFile = %q, want %q", cfg.Registry.TraceFile, "/env/trace.jsonl")
	}
	if cfg.Registry.BypassListFile != "/env/.intentignore" {
		t.Errorf("applyEnv Registry.BypassListFile = %q, want %q", cfg.Registry.BypassListFile, "/env/.intentignore")
	}
}

func TestApplyEnv_ModalTimeoutSeconds(t *testing.T) {
	t.Setenv("IGK_OUTPUT", "")
	t.Setenv("IGK_VERBOSE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")
	t.Setenv("IGK_MODAL_TIMEOUT_SECONDS", "45")

	cfg := Default()
	cfg = applyEnv(cfg)

	if cfg.Authorization.ModalTimeoutSeconds != 45 {
		t.Errorf("applyEnv Authorization.ModalTimeoutSeconds = %d, want 45", cfg.Authorization.ModalTimeoutSeconds)
	}
}

func TestApplyEnv_ModalTimeoutSecondsInvalidIgnored(t *testing.T) {
	t.Setenv("IGK_OUTPUT", "")
	t.Setenv("IGK_VERBOSE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")
	t.Setenv("IGK_MODAL_TIMEOUT_SECONDS", "not-a-number")

	cfg := Default()
	cfg = applyEnv(cfg)

	if cfg.Authorization.ModalTimeoutSeconds != 0 {
		t.Errorf("applyEnv should ignore a non-numeric IGK_MODAL_TIMEOUT_SECONDS, got %d", cfg.Authorization.ModalTimeoutSeconds)
	}
}

func TestApplyEnv_VerboseVariants(t *testing.T) {
	tests := []struct {
		name    string
		envVal  string
		wantVer bool
	}{
		{name: "true", envVal: "true", wantVer: true},
		{name: "1", envVal: "1", wantVer: true},
		{name: "false", envVal: "false", wantVer: false},
		{name: "empty", envVal: "", wantVer: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("IGK_OUTPUT", "")
			t.Setenv("IGK_INTENTS_FILE", "")
			t.Setenv("IGK_TRACE_FILE", "")
			t.Setenv("IGK_BYPASS_LIST_FILE", "")
			t.Setenv("IGK_VERBOSE", tt.envVal)

			cfg := Default()
			cfg = applyEnv(cfg)

			if cfg.Verbose != tt.wantVer {
				t.Errorf("applyEnv Verbose = %v, want %v for IGK_VERBOSE=%q", cfg.Verbose, tt.wantVer, tt.envVal)
			}
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output: json
verbose: true
registry:
  intents_file: /custom/intents.yaml
  trace_file: /custom/trace.jsonl
authorization:
  modal_timeout_seconds: 45
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromPath(configPath)
	if err != nil {
		t.Fatalf("loadFromPath() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("loadFromPath Output = %q, want %q", cfg.Output, "json")
	}
	if !cfg.Verbose {
		t.Error("loadFromPath Verbose = false, want true")
	}
	if cfg.Registry.IntentsFile != "/custom/intents.yaml" {
		t.Errorf("loadFromPath Registry.IntentsFile = %q, want %q", cfg.Registry.IntentsFile, "/custom/intents.yaml")
	}
	if cfg.Registry.TraceFile != "/custom/trace.jsonl" {
		t.Errorf("loadFromPath Registry.TraceFile = %q, want %q", cfg.Registry.TraceFile, "/custom/trace.jsonl")
	}
	if cfg.Authorization.ModalTimeoutSeconds != 45 {
		t.Errorf("loadFromPath Authorization.ModalTimeoutSeconds = %d, want 45", cfg.Authorization.ModalTimeoutSeconds)
	}
}

func TestLoadFromPath_NotExists(t *testing.T) {
	cfg, err := loadFromPath("/nonexistent/config.yaml")
	if cfg != nil {
		t.Errorf("loadFromPath for nonexistent file should return nil config")
	}
	if err == nil {
		t.Errorf("loadFromPath for nonexistent file should return error")
	}
}

func TestLoadFromPath_Empty(t *testing.T) {
	cfg, err := loadFromPath("")
	if cfg != nil || err != nil {
		t.Errorf("loadFromPath(\"\") = %v, %v; want nil, nil", cfg, err)
	}
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `{{{invalid yaml`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromPath(configPath)
	if err == nil {
		t.Error("loadFromPath for invalid YAML should return error")
	}
	if cfg != nil {
		t.Error("loadFromPath for invalid YAML should return nil config")
	}
}

func TestProjectConfigPath_UsesEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "custom.yaml")
	t.Setenv("IGK_CONFIG", configPath)

	got := projectConfigPath("/some/workspace")
	if got != configPath {
		t.Fatalf("projectConfigPath() = %q, want %q", got, configPath)
	}
}

func TestProjectConfigPath_DefaultFromWorkspaceRoot(t *testing.T) {
	t.Setenv("IGK_CONFIG", "")
	got := projectConfigPath("/some/workspace")
	want := filepath.Join("/some/workspace", ".orchestration", "config.yaml")
	if got != want {
		t.Errorf("projectConfigPath() = %q, want %q", got, want)
	}
}

func TestProjectConfigPath_EmptyWorkspaceRoot(t *testing.T) {
	t.Setenv("IGK_CONFIG", "")
	got := projectConfigPath("")
	if got != "" {
		t.Errorf("projectConfigPath(\"\") = %q, want empty", got)
	}
}

func TestLoad_WithFlagOverrides(t *testing.T) {
	t.Setenv("IGK_CONFIG", "")
	t.Setenv("IGK_OUTPUT", "")
	t.Setenv("IGK_VERBOSE", "")
	t.Setenv("IGK_INTENTS_FILE", "")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	overrides := &Config{
		Output:  "json",
		Verbose: true,
	}

	cfg, err := Load("", overrides)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Load Output = %q, want %q", cfg.Output, "json")
	}
	if !cfg.Verbose {
		t.Error("Load Verbose = false, want true")
	}
}

func TestLoad_NilOverrides(t *testing.T) {
	t.Setenv("IGK_CONFIG", "")
	t.Setenv("IGK_OUTPUT", "")
	t.Setenv("IGK_VERBOSE", "")
	t.Setenv("IGK_INTENTS_FILE", "")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "table" {
		t.Errorf("Load nil Output = %q, want %q", cfg.Output, "table")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IGK_CONFIG", "")
	t.Setenv("IGK_OUTPUT", "yaml")
	t.Setenv("IGK_VERBOSE", "1")
	t.Setenv("IGK_INTENTS_FILE", "")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "yaml" {
		t.Errorf("Load env Output = %q, want %q", cfg.Output, "yaml")
	}
	if !cfg.Verbose {
		t.Error("Load env Verbose = false, want true")
	}
}

func TestLoad_WithProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
output: yaml
registry:
  intents_file: /project/intents.yaml
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IGK_CONFIG", configPath)
	t.Setenv("IGK_OUTPUT", "")
	t.Setenv("IGK_VERBOSE", "")
	t.Setenv("IGK_INTENTS_FILE", "")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "yaml" {
		t.Errorf("Load with project config Output = %q, want %q", cfg.Output, "yaml")
	}
	if cfg.Registry.IntentsFile != "/project/intents.yaml" {
		t.Errorf("Load with project config Registry.IntentsFile = %q, want %q", cfg.Registry.IntentsFile, "/project/intents.yaml")
	}
}

func TestResolveStringField(t *testing.T) {
	tests := []struct {
		name       string
		home       string
		project    string
		env        string
		flag       string
		def        string
		wantValue  string
		wantSource Source
	}{
		{
			name:       "default only",
			def:        "table",
			wantValue:  "table",
			wantSource: SourceDefault,
		},
		{
			name:       "home overrides default",
			home:       "json",
			def:        "table",
			wantValue:  "json",
			wantSource: SourceHome,
		},
		{
			name:       "project overrides home",
			home:       "json",
			project:    "yaml",
			def:        "table",
			wantValue:  "yaml",
			wantSource: SourceProject,
		},
		{
			name:       "env overrides project",
			home:       "json",
			project:    "yaml",
			env:        "csv",
			def:        "table",
			wantValue:  "csv",
			wantSource: SourceEnv,
		},
		{
			name:       "flag overrides everything",
			home:       "json",
			project:    "yaml",
			env:        "csv",
			flag:       "text",
			def:        "table",
			wantValue:  "text",
			wantSource: SourceFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStringField(tt.home, tt.project, tt.env, tt.flag, tt.def)
			if got.Value != tt.wantValue {
				t.Errorf("resolveStringField() Value = %v, want %v", got.Value, tt.wantValue)
			}
			if got.Source != tt.wantSource {
				t.Errorf("resolveStringField() Source = %v, want %v", got.Source, tt.wantSource)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		wantBool bool
		wantSet  bool
	}{
		{name: "true string", envVal: "true", wantBool: true, wantSet: true},
		{name: "1 string", envVal: "1", wantBool: true, wantSet: true},
		{name: "false string", envVal: "false", wantBool: false, wantSet: false},
		{name: "empty string", envVal: "", wantBool: false, wantSet: false},
		{name: "random string", envVal: "yes", wantBool: false, wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL_KEY", tt.envVal)
			gotBool, gotSet := getEnvBool("TEST_BOOL_KEY")
			if gotBool != tt.wantBool {
				t.Errorf("getEnvBool() bool = %v, want %v", gotBool, tt.wantBool)
			}
			if gotSet != tt.wantSet {
				t.Errorf("getEnvBool() set = %v, want %v", gotSet, tt.wantSet)
			}
		})
	}
}

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name    string
		envVal  string
		wantVal string
		wantSet bool
	}{
		{name: "set value", envVal: "hello", wantVal: "hello", wantSet: true},
		{name: "empty value", envVal: "", wantVal: "", wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_STR_KEY", tt.envVal)
			gotVal, gotSet := getEnvString("TEST_STR_KEY")
			if gotVal != tt.wantVal {
				t.Errorf("getEnvString() val = %q, want %q", gotVal, tt.wantVal)
			}
			if gotSet != tt.wantSet {
				t.Errorf("getEnvString() set = %v, want %v", gotSet, tt.wantSet)
			}
		})
	}
}

func TestResolve_Defaults(t *testing.T) {
	for _, key := range []string{"IGK_CONFIG", "IGK_OUTPUT", "IGK_VERBOSE", "IGK_INTENTS_FILE", "IGK_TRACE_FILE", "IGK_BYPASS_LIST_FILE"} {
		t.Setenv(key, "")
	}

	rc := Resolve("", "", false)

	if rc.Output.Value != "table" {
		t.Errorf("Resolve default Output.Value = %v, want %q", rc.Output.Value, "table")
	}
	if rc.Output.Source != SourceDefault {
		t.Errorf("Resolve default Output.Source = %v, want %v", rc.Output.Source, SourceDefault)
	}
	if rc.Verbose.Value != false {
		t.Errorf("Resolve default Verbose.Value = %v, want false", rc.Verbose.Value)
	}
}

func TestResolve_FlagOverridesEverything(t *testing.T) {
	for _, key := range []string{"IGK_CONFIG", "IGK_OUTPUT", "IGK_VERBOSE", "IGK_INTENTS_FILE", "IGK_TRACE_FILE", "IGK_BYPASS_LIST_FILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("IGK_OUTPUT", "csv")

	rc := Resolve("", "json", true)

	if rc.Output.Value != "json" || rc.Output.Source != SourceFlag {
		t.Errorf("Resolve Output = (%v, %v), want (json, %v)", rc.Output.Value, rc.Output.Source, SourceFlag)
	}
	if rc.Verbose.Value != true || rc.Verbose.Source != SourceFlag {
		t.Errorf("Resolve Verbose = (%v, %v), want (true, %v)", rc.Verbose.Value, rc.Verbose.Source, SourceFlag)
	}
}

func TestResolve_EnvOverride(t *testing.T) {
	t.Setenv("IGK_CONFIG", "")
	t.Setenv("IGK_OUTPUT", "yaml")
	t.Setenv("IGK_VERBOSE", "1")
	t.Setenv("IGK_INTENTS_FILE", "/env/intents.yaml")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	rc := Resolve("", "", false)

	if rc.Output.Value != "yaml" || rc.Output.Source != SourceEnv {
		t.Errorf("Resolve env Output = (%v, %v), want (yaml, %v)", rc.Output.Value, rc.Output.Source, SourceEnv)
	}
	if rc.Verbose.Value != true || rc.Verbose.Source != SourceEnv {
		t.Errorf("Resolve env Verbose = (%v, %v), want (true, %v)", rc.Verbose.Value, rc.Verbose.Source, SourceEnv)
	}
	if rc.IntentsFile.Value != "/env/intents.yaml" || rc.IntentsFile.Source != SourceEnv {
		t.Errorf("Resolve env IntentsFile = (%v, %v), want (/env/intents.yaml, %v)", rc.IntentsFile.Value, rc.IntentsFile.Source, SourceEnv)
	}
}

func TestResolve_WithProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
output: yaml
verbose: true
registry:
  intents_file: /project/intents.yaml
  trace_file: /project/trace.jsonl
  bypass_list_file: /project/.intentignore
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IGK_CONFIG", configPath)
	for _, key := range []string{"IGK_OUTPUT", "IGK_VERBOSE", "IGK_INTENTS_FILE", "IGK_TRACE_FILE", "IGK_BYPASS_LIST_FILE"} {
		t.Setenv(key, "")
	}

	rc := Resolve("", "", false)

	if rc.Output.Value != "yaml" || rc.Output.Source != SourceProject {
		t.Errorf("Output = (%v, %v), want (yaml, %v)", rc.Output.Value, rc.Output.Source, SourceProject)
	}
	if rc.Verbose.Value != true || rc.Verbose.Source != SourceProject {
		t.Errorf("Verbose = (%v, %v), want (true, %v)", rc.Verbose.Value, rc.Verbose.Source, SourceProject)
	}
	if rc.IntentsFile.Value != "/project/intents.yaml" || rc.IntentsFile.Source != SourceProject {
		t.Errorf("IntentsFile = (%v, %v), want (/project/intents.yaml, %v)", rc.IntentsFile.Value, rc.IntentsFile.Source, SourceProject)
	}
	if rc.TraceFile.Value != "/project/trace.jsonl" || rc.TraceFile.Source != SourceProject {
		t.Errorf("TraceFile = (%v, %v), want (/project/trace.jsonl, %v)", rc.TraceFile.Value, rc.TraceFile.Source, SourceProject)
	}
	if rc.BypassListFile.Value != "/project/.intentignore" || rc.BypassListFile.Source != SourceProject {
		t.Errorf("BypassListFile = (%v, %v), want (/project/.intentignore, %v)", rc.BypassListFile.Value, rc.BypassListFile.Source, SourceProject)
	}
}

func TestResolve_FlagOverridesProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
output: yaml
verbose: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IGK_CONFIG", configPath)
	for _, key := range []string{"IGK_OUTPUT", "IGK_VERBOSE", "IGK_INTENTS_FILE", "IGK_TRACE_FILE", "IGK_BYPASS_LIST_FILE"} {
		t.Setenv(key, "")
	}

	rc := Resolve("", "json", true)

	if rc.Output.Value != "json" || rc.Output.Source != SourceFlag {
		t.Errorf("Flag should override project: Output = (%v, %v)", rc.Output.Value, rc.Output.Source)
	}
	if rc.Verbose.Value != true || rc.Verbose.Source != SourceFlag {
		t.Errorf("Flag should override project: Verbose = (%v, %v)", rc.Verbose.Value, rc.Verbose.Source)
	}
}

func TestResolve_EnvOverridesProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
output: yaml
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IGK_CONFIG", configPath)
	t.Setenv("IGK_OUTPUT", "csv")
	t.Setenv("IGK_VERBOSE", "true")
	t.Setenv("IGK_INTENTS_FILE", "")
	t.Setenv("IGK_TRACE_FILE", "")
	t.Setenv("IGK_BYPASS_LIST_FILE", "")

	rc := Resolve("", "", false)

	if rc.Output.Value != "csv" || rc.Output.Source != SourceEnv {
		t.Errorf("Env should override project: Output = (%v, %v)", rc.Output.Value, rc.Output.Source)
	}
	if rc.Verbose.Value != true || rc.Verbose.Source != SourceEnv {
		t.Errorf("Env should override project: Verbose = (%v, %v)", rc.Verbose.Value, rc.Verbose.Source)
	}
}
