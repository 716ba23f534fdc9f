package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/intentguard/igk/internal/intent"
	"github.com/intentguard/igk/internal/session"
)

var intentCmd = &cobra.Command{
	Use:   "intent",
	Short: "Manage the active-intent registry",
	Long: `Inspect and drive the Intent Store directly, the same registry the
Intent Update Hook advances in response to select_active_intent and
attempt_completion tool calls. Useful for scripting or testing a workflow
without a live agent session.`,
}

var intentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every intent in the registry",
	RunE:  runIntentList,
}

var intentShowCmd = &cobra.Command{
	Use:   "show <intent-id>",
	Short: "Show one intent's full detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntentShow,
}

var intentSelectCmd = &cobra.Command{
	Use:   "select <intent-id>",
	Short: "Mark an intent IN_PROGRESS (mirrors select_active_intent)",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntentSelect,
}

var intentCompleteCmd = &cobra.Command{
	Use:   "complete <intent-id>",
	Short: "Mark an intent COMPLETED (mirrors attempt_completion)",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntentComplete,
}

func init() {
	rootCmd.AddCommand(intentCmd)
	intentCmd.AddCommand(intentListCmd, intentShowCmd, intentSelectCmd, intentCompleteCmd)
}

func openIntentStore() (*intent.Store, error) {
	root, err := resolveWorkspace()
	if err != nil {
		return nil, err
	}
	return intent.Load(filepath.Join(root, intent.RegistryFile))
}

func runIntentList(cmd *cobra.Command, args []string) error {
	store, err := openIntentStore()
	if err != nil {
		return err
	}
	all := store.All()

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal intents: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(all) == 0 {
		fmt.Println("No intents in the registry.")
		return nil
	}
	for _, in := range all {
		fmt.Printf("%-12s %-10s %s\n", in.ID, in.Status, in.Name)
	}
	return nil
}

func runIntentShow(cmd *cobra.Command, args []string) error {
	store, err := openIntentStore()
	if err != nil {
		return err
	}
	in, ok := store.Find(args[0])
	if !ok {
		return fmt.Errorf("intent %q not found in registry", args[0])
	}

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal intent: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("ID:       %s\n", in.ID)
	fmt.Printf("Name:     %s\n", in.Name)
	fmt.Printf("Status:   %s\n", in.Status)
	if len(in.OwnedScope) > 0 {
		fmt.Printf("Scope:    %v\n", in.OwnedScope)
	}
	if len(in.Constraints) > 0 {
		fmt.Printf("Constraints:\n")
		for _, c := range in.Constraints {
			fmt.Printf("  - %s\n", c)
		}
	}
	if len(in.AcceptanceCriteria) > 0 {
		fmt.Printf("Acceptance Criteria:\n")
		for _, c := range in.AcceptanceCriteria {
			fmt.Printf("  - %s\n", c)
		}
	}
	return nil
}

func runIntentSelect(cmd *cobra.Command, args []string) error {
	id := args[0]
	if GetDryRun() {
		fmt.Printf("[dry-run] Would mark %s IN_PROGRESS\n", id)
		return nil
	}
	store, err := openIntentStore()
	if err != nil {
		return err
	}
	if err := store.SetStatus(id, session.StatusInProgress); err != nil {
		return err
	}
	VerbosePrintf("marked %s IN_PROGRESS\n", id)
	fmt.Printf("%s selected.\n", id)
	return nil
}

func runIntentComplete(cmd *cobra.Command, args []string) error {
	id := args[0]
	if GetDryRun() {
		fmt.Printf("[dry-run] Would mark %s COMPLETED\n", id)
		return nil
	}
	store, err := openIntentStore()
	if err != nil {
		return err
	}
	if err := store.SetStatus(id, session.StatusCompleted); err != nil {
		return err
	}
	VerbosePrintf("marked %s COMPLETED\n", id)
	fmt.Printf("%s completed.\n", id)
	return nil
}
