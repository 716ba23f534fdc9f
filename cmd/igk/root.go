package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/intentguard/igk/internal/diag"
)

var (
	// Global flags
	dryRun    bool
	verbose   bool
	output    string
	cfgFile   string
	workspaceFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "igk",
	Short: "Intent Governance Kernel CLI",
	Long: `igk is the CLI for the Intent Governance Kernel, a hook pipeline that
confines autonomous agent edits to a human-approved scope.

"No edit without an intent. No scope creep without a rejection."

Core Commands:
  intent   Manage the active-intent registry
  invoke   Run a tool call through the hook pipeline
  approve  Interactive approval dialog for the Authorization Hook
  hooks    Generate and install Claude Code hook wiring
  trace    Inspect the provenance ledger
  config   Show resolved configuration
  version  Show version information`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		diag.SetDefault(diag.NewVerboseSink(verbose))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would happen without executing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (json, table, yaml)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.igk/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", "", "Workspace root (default: walk up from cwd for .orchestration or .git)")
}

// GetDryRun returns the dry-run flag value for use by subcommands.
func GetDryRun() bool { return dryRun }

// GetVerbose returns the verbose flag value for use by subcommands.
func GetVerbose() bool { return verbose }

// GetOutput returns the output format for use by subcommands.
func GetOutput() string { return output }

// GetConfigFile returns the config file path for use by subcommands.
func GetConfigFile() string { return cfgFile }

// GetWorkspaceFlag returns the --workspace flag's raw value (possibly
// empty, in which case callers should resolve it via workspace.Resolve).
func GetWorkspaceFlag() string { return workspaceFlag }

// VerbosePrintf prints only when verbose mode is enabled.
func VerbosePrintf(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format, args...)
	}
}

// GetCurrentUser returns the current system username.
// Uses os/user package for reliable identity, not spoofable via env vars.
func GetCurrentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}
