package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intentguard/igk/internal/config"
)

var configResolve bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Long: `Show the kernel's active configuration.

With --resolve, each field is annotated with which precedence tier won it
(flag, environment, project config, home config, or default) — useful for
debugging why a path or flag didn't take effect.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().BoolVar(&configResolve, "resolve", false, "Annotate each value with its winning source")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	root, _ := resolveWorkspace()

	if configResolve {
		rc := config.Resolve(root, GetOutput(), GetVerbose())
		data, err := json.MarshalIndent(rc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal resolved config: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	cfg, err := config.Load(root, &config.Config{Output: GetOutput(), Verbose: GetVerbose()})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
