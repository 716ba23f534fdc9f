// Command igk is the Intent Governance Kernel CLI: it drives the Intent
// Store, runs tool invocations through the hook pipeline, and generates the
// Claude Code settings.json hooks block that wires igk into a live agent
// session.
package main

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	Execute()
}
