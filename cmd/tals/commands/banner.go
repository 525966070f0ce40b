package commands

import (
	"fmt"

	"github.com/teranos/TALS/logger"
	"github.com/teranos/TALS/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(verbosity int, modelPath string, port int) {
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔══════════════════════════════════════╗\n")
	fmt.Printf("   ║                                      ║\n")
	fmt.Printf("   ║   ████████  █████  ██      ███████   ║\n")
	fmt.Printf("   ║      ██    ██   ██ ██      ██        ║\n")
	fmt.Printf("   ║      ██    ███████ ██      ███████   ║\n")
	fmt.Printf("   ║      ██    ██   ██ ██           ██   ║\n")
	fmt.Printf("   ║      ██    ██   ██ ███████ ███████   ║\n")
	fmt.Printf("   ║                                      ║\n")
	fmt.Printf("   ╚══════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ TALS Info ─────────────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:   %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Built:     %s\n", green, reset, versionInfo.BuildTime)
	fmt.Printf("%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Printf("%s│%s Port:      %d\n", green, reset, port)
	if modelPath != "" {
		fmt.Printf("%s│%s Model:     %s\n", green, reset, modelPath)
	}
	fmt.Printf("%s└─────────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%s✨ Connect your editor to ws://localhost:%d/ws%s\n", yellow, bold, port, reset)
	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
