package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/intentguard/igk/internal/classify"
	"github.com/intentguard/igk/internal/config"
	"github.com/intentguard/igk/internal/engine"
	"github.com/intentguard/igk/internal/hooks"
	"github.com/intentguard/igk/internal/session"
	"github.com/intentguard/igk/internal/wire"
)

var invokeResult string

// invokeRequest is the JSON envelope igk invoke reads from stdin: the
// ToolInvocation fields the wire schema validates, plus the task-session
// context (not part of the ToolInvocation wire shape) that the hooks need
// to make their decision.
type invokeRequest struct {
	ID         string            `json:"id"`
	Tool       string            `json:"tool"`
	Params     map[string]string `json:"params"`
	NativeArgs map[string]any    `json:"native_args"`

	TaskID          string `json:"task_id"`
	ActiveIntentID  string `json:"active_intent_id"`
	ModelEntityType string `json:"model_entity_type"`
	ModelIdentifier string `json:"model_identifier"`
}

// invokeResponse is what igk invoke prints to stdout: the governance
// outcome for the calling host (a Claude Code PreToolUse/PostToolUse hook
// command, or a test harness) to act on.
type invokeResponse struct {
	Outcome    string                   `json:"outcome"` // "pass" | "blocked"
	Invocation *session.ToolInvocation  `json:"invocation,omitempty"`
	Rejection  *session.RejectionError  `json:"rejection,omitempty"`
}

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run one tool call through the hook pipeline",
	Long: `Read a ToolInvocation (plus task context) as JSON from stdin, run it
through the full pre/post pipeline against the resolved workspace, and print
the resulting decision: "pass" or "blocked" as JSON (with the structured
RejectionError) for a policy rejection (Authorization/Scope/OptimisticLock),
or a bare plain-text line for the Gatekeeper's governance block, per the
two-channel error taxonomy in spec §7.

This is the integration point a Claude Code PreToolUse/PostToolUse hook
command shells out to; see "igk hooks init".`,
	RunE: runInvoke,
}

func init() {
	rootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().StringVar(&invokeResult, "result", "", "Tool result text, fed to post-hooks (IntentUpdate, TraceWriter)")
}

func runInvoke(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse invocation JSON: %w", err)
	}
	if err := wire.ValidateInvocation(raw); err != nil {
		return err
	}

	var req invokeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode invocation: %w", err)
	}

	inv := session.ToolInvocation{ID: req.ID, Tool: req.Tool, Params: req.Params, NativeArgs: req.NativeArgs}
	task := &session.TaskSession{
		TaskID:         req.TaskID,
		ActiveIntentID: req.ActiveIntentID,
		Model:          session.ModelDescriptor{EntityType: req.ModelEntityType, ModelIdentifier: req.ModelIdentifier},
	}

	root, err := resolveWorkspace()
	if err != nil {
		return err
	}

	cfg, err := config.Load(root, nil)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	approver := TerminalApprover{TimeoutSeconds: cfg.Authorization.ModalTimeoutSeconds}
	pipeline, err := hooks.NewDefaultEngine(root, approver, nil)
	if err != nil {
		return fmt.Errorf("build hook pipeline: %w", err)
	}

	if GetDryRun() {
		fmt.Printf("[dry-run] Would run %s through the hook pipeline\n", inv.Tool)
		return nil
	}

	final, rejection, plainBlock := pipeline.Engine.RunPre(engine.Context{Invocation: inv, Task: task})

	// The Gatekeeper's governance block is a distinct plain-text channel
	// (§7), printed raw rather than wrapped in the RejectionError JSON the
	// other pre-hooks use.
	if plainBlock != "" {
		fmt.Println(plainBlock)
		os.Exit(1)
	}

	resp := invokeResponse{}
	if rejection != nil {
		resp.Outcome = "blocked"
		resp.Rejection = rejection
		if err := validateRejectionResponse(*rejection); err != nil {
			return err
		}
	} else {
		resp.Outcome = "pass"
		resp.Invocation = &final
		if classify.IsWriteTool(final.Tool) || final.Tool == "select_active_intent" || final.Tool == "attempt_completion" {
			pipeline.Engine.RunPost(engine.Context{Invocation: final, Task: task}, invokeResult)
		}
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	fmt.Println(string(out))

	if resp.Outcome == "blocked" {
		os.Exit(1)
	}
	return nil
}

// validateRejectionResponse re-encodes r and checks it against the
// RejectionError wire schema before it's handed back to the LLM, catching
// a malformed payload at the boundary instead of letting it reach the host.
func validateRejectionResponse(r session.RejectionError) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal rejection: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode rejection for validation: %w", err)
	}
	return wire.ValidateRejection(v)
}
