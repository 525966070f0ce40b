package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/nta"
	"github.com/teranos/TALS/nta/autocomplete"
)

// CompleteCmd resolves one completion request without a running server
var CompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Resolve one completion request against a model document",
	Long: `Load an NTA model document, resolve a single completion request, and
print the suggestions as JSON. Useful for scripting and for testing editor
integrations without a running server.

Example:
  tals complete --model train-gate.xml --xpath "/nta/declaration" --offset 40
  tals complete --model train-gate.xml --xpath "/nta/queries!" --identifier "Train."`,
	RunE: runComplete,
}

var (
	completeModelPath  string
	completeXPath      string
	completeOffset     int
	completeIdentifier string
)

func init() {
	CompleteCmd.Flags().StringVar(&completeModelPath, "model", "", "NTA model document (required)")
	CompleteCmd.Flags().StringVar(&completeXPath, "xpath", "", "Completion context path (required)")
	CompleteCmd.Flags().IntVar(&completeOffset, "offset", 0, "Cursor offset inside the context")
	CompleteCmd.Flags().StringVar(&completeIdentifier, "identifier", "", "Partial identifier under the cursor")
	CompleteCmd.MarkFlagRequired("model")
	CompleteCmd.MarkFlagRequired("xpath")
}

func runComplete(cmd *cobra.Command, args []string) error {
	repo := nta.NewRepository()
	if _, err := repo.Load(completeModelPath); err != nil {
		return errors.Wrap(err, "failed to load model document")
	}

	resolver := autocomplete.NewService(repo)
	items, err := resolver.Complete(autocomplete.Request{
		XPath:      completeXPath,
		Offset:     completeOffset,
		Identifier: completeIdentifier,
	})
	if err != nil {
		return errors.Wrap(err, "completion failed")
	}

	output, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format output")
	}
	fmt.Println(string(output))
	return nil
}
