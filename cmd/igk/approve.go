package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/intentguard/igk/internal/config"
	"github.com/intentguard/igk/internal/hooks"
)

var (
	approveTool           string
	approvePath           string
	approveTimeoutSeconds int
)

var (
	approveTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	approveMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	approveBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	approveYesStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	approveNoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
)

// approveCmd is a terminal implementation of the Authorization Hook's modal
// approval contract: given a tool name and a label, it blocks on the
// terminal until the human presses y/n, then prints "approved" or
// "rejected" and exits 0/1 accordingly. igk invoke shells out to this via
// TerminalApprover when no other host Approver is wired.
var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Interactive approval dialog for a pending destructive tool call",
	Long: `Present an interactive y/n prompt for one pending tool call, the same
decision the Authorization Hook asks a host UI for. Intended for manual
testing and demos, and as the default approver igk invoke falls back to
when no other host integration is configured.`,
	RunE: runApprove,
}

func init() {
	rootCmd.AddCommand(approveCmd)
	approveCmd.Flags().StringVar(&approveTool, "tool", "", "Tool name pending approval")
	approveCmd.Flags().StringVar(&approvePath, "path", "", "Target path of the pending tool call")
	approveCmd.Flags().IntVar(&approveTimeoutSeconds, "timeout-seconds", 0, "Auto-reject after N seconds of no response (default: config authorization.modal_timeout_seconds, 0 = no timeout)")
}

func runApprove(cmd *cobra.Command, args []string) error {
	if approveTool == "" {
		return fmt.Errorf("--tool is required")
	}

	timeout := approveTimeoutSeconds
	if !cmd.Flags().Changed("timeout-seconds") {
		root, _ := resolveWorkspace()
		if cfg, err := config.Load(root, nil); err == nil {
			timeout = cfg.Authorization.ModalTimeoutSeconds
		}
	}

	approved := RunApprovalModal(approveTool, humanizeApproveLabel(approveTool), approvePath, timeout)
	if approved {
		fmt.Println("approved")
		return nil
	}
	fmt.Println("rejected")
	return fmt.Errorf("not approved")
}

func humanizeApproveLabel(tool string) string {
	return tool
}

// approveTimeoutMsg fires once the modal's timeout elapses with no
// response, so Update can auto-reject instead of blocking forever.
type approveTimeoutMsg struct{}

// approveModel is the bubbletea.Model backing the interactive y/n dialog.
type approveModel struct {
	tool           string
	label          string
	path           string
	timeoutSeconds int
	decided        bool
	approved       bool
}

func (m approveModel) Init() tea.Cmd {
	if m.timeoutSeconds <= 0 {
		return nil
	}
	return tea.Tick(time.Duration(m.timeoutSeconds)*time.Second, func(time.Time) tea.Msg {
		return approveTimeoutMsg{}
	})
}

func (m approveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case approveTimeoutMsg:
		if m.decided {
			return m, nil
		}
		m.decided, m.approved = true, false
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.decided, m.approved = true, true
			return m, tea.Quit
		case "n", "N", "esc", "ctrl+c":
			m.decided, m.approved = true, false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m approveModel) View() string {
	if m.decided {
		return ""
	}
	prompt := "[y] approve   [n] reject"
	if m.timeoutSeconds > 0 {
		prompt = fmt.Sprintf("%s   (auto-reject in %ds)", prompt, m.timeoutSeconds)
	}
	body := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		approveTitleStyle.Render("Approval required"),
		fmt.Sprintf("Tool:  %s", m.label),
		approveMutedStyle.Render(fmt.Sprintf("Path:  %s", m.path)),
		prompt,
	)
	return approveBoxStyle.Render(body) + "\n"
}

// RunApprovalModal drives the interactive dialog to completion and reports
// whether the human pressed y. Any non-approval input (including ctrl+c, a
// timeout, or an I/O failure) is treated as a rejection, matching the
// Authorization Hook's "anything but an explicit approval is a rejection"
// contract. timeoutSeconds <= 0 waits indefinitely; this is the host UI's
// own deadline per spec §5 ("the host UI owns the modal timeout"), not one
// the Authorization Hook or engine enforces.
func RunApprovalModal(tool, label, path string, timeoutSeconds int) bool {
	m := approveModel{tool: tool, label: label, path: path, timeoutSeconds: timeoutSeconds}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false
	}
	fm, ok := final.(approveModel)
	return ok && fm.approved
}

// TerminalApprover implements hooks.Approver by running the interactive
// dialog for every destructive tool call igk invoke is asked to gate.
// TimeoutSeconds is sourced from AuthorizationConfig.ModalTimeoutSeconds
// (igk invoke's only consumer of that setting); 0 waits indefinitely.
type TerminalApprover struct {
	TimeoutSeconds int
}

func (a TerminalApprover) Approve(tool, label, path string) bool {
	return RunApprovalModal(tool, label, path, a.TimeoutSeconds)
}

var _ hooks.Approver = TerminalApprover{}
