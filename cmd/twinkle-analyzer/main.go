// cmd/twinkle-analyzer/main.go
package main

import (
	cmd "github.com/ai-twinkle/analyzer/internal/commands"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the analyzer CLI by delegating to the cobra root command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
