package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/TALS/cmd/tals/commands"
	"github.com/teranos/TALS/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tals",
	Short: "TALS - Language intelligence for timed-automata models",
	Long: `TALS - Language server for networks of timed automata.

TALS parses NTA model documents and serves context-aware identifier
completion to connected editors over WebSocket and HTTP.

Available commands:
  server   - Start the completion server
  check    - Parse a model document and report its symbol table
  complete - Resolve one completion request against a model document
  version  - Show version information

Examples:
  tals server --model train-gate.xml    # Serve completions for a model
  tals check train-gate.xml             # Validate declarations
  tals complete --model m.xml --xpath "/nta/declaration" --offset 10`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithLevel(false, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.ServerCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.CompleteCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
