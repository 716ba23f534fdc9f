package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/intentguard/igk/internal/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Inspect the provenance ledger",
}

var traceShowCmd = &cobra.Command{
	Use:   "show <relative-path>",
	Short: "Show every trace entry touching a file",
	Long: `Trace a file back to the intents and conversations that produced it.

Matches first on the exact relative path recorded in the ledger, falling
back to a basename match for a file that's since been renamed or moved.

Examples:
  igk trace show src/auth/login.ts
  igk trace show login.ts -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runTraceShow,
}

var traceStatCmd = &cobra.Command{
	Use:   "stat",
	Short: "Summarize the ledger: entry, file, and intent counts",
	RunE:  runTraceStat,
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.AddCommand(traceShowCmd, traceStatCmd)
}

func loadTraceGraph() (*trace.Graph, error) {
	root, err := resolveWorkspace()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, trace.LedgerFile)
	g, err := trace.LoadGraph(path)
	if err != nil {
		return nil, fmt.Errorf("load trace ledger: %w", err)
	}
	return g, nil
}

func runTraceShow(cmd *cobra.Command, args []string) error {
	relativePath := args[0]

	g, err := loadTraceGraph()
	if err != nil {
		return err
	}
	matches := g.Trace(relativePath)

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal trace entries: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		fmt.Printf("No provenance found for: %s\n", relativePath)
		return nil
	}

	fmt.Printf("\nProvenance for: %s\n", relativePath)
	for i, entry := range matches {
		fmt.Printf("Entry %d:\n", i+1)
		fmt.Printf("  ID:        %s\n", entry.ID)
		fmt.Printf("  Timestamp: %s\n", entry.Timestamp)
		for _, f := range entry.Files {
			for _, c := range f.Conversations {
				fmt.Printf("  Session:   %s\n", c.URL)
				fmt.Printf("  Model:     %s/%s\n", c.Contributor.EntityType, c.Contributor.ModelIdentifier)
				for _, r := range c.Ranges {
					fmt.Printf("  Range:     lines %d-%d, %s, hash %s\n", r.StartLine, r.EndLine, r.MutationClass, r.ContentHash)
				}
				for _, r := range c.Related {
					fmt.Printf("  Related:   %s=%s\n", r.Type, r.Value)
				}
			}
		}
		fmt.Println()
	}
	return nil
}

func runTraceStat(cmd *cobra.Command, args []string) error {
	g, err := loadTraceGraph()
	if err != nil {
		return err
	}
	stats := g.GetStats()

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal trace stats: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Total entries:  %d\n", stats.TotalEntries)
	fmt.Printf("Unique files:   %d\n", stats.UniqueFiles)
	fmt.Printf("Unique intents: %d\n", stats.UniqueIntents)
	if len(stats.MutationClasses) > 0 {
		fmt.Println("Mutation classes:")
		for class, count := range stats.MutationClasses {
			fmt.Printf("  %-18s %d\n", class, count)
		}
	}
	return nil
}
