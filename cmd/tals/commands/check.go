package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/nta"
	"github.com/teranos/TALS/nta/autocomplete"
)

// CheckCmd parses a model document and reports its symbol table
var CheckCmd = &cobra.Command{
	Use:   "check <model.xml>",
	Short: "Parse an NTA model document and report its declarations",
	Long: `Parse the declaration sections of an NTA model document and print the
symbol table the completion resolver would work from, along with any parse
diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, diags, err := nta.LoadDocument(path)
	if err != nil {
		return errors.Wrap(err, "failed to load model document")
	}

	fmt.Printf("Global declarations (%d symbols):\n", len(doc.Global.Symbols))
	for _, sym := range doc.Global.Symbols {
		fmt.Printf("  %-20s %s\n", sym.Name, autocomplete.KindOf(sym.Type))
	}

	for _, tmpl := range doc.Templates {
		fmt.Printf("\nTemplate %s (%d symbols, %d locations):\n",
			tmpl.Name, len(tmpl.Decls.Symbols), len(tmpl.Locations))
		for _, sym := range tmpl.Decls.Symbols {
			fmt.Printf("  %-20s %s\n", sym.Name, autocomplete.KindOf(sym.Type))
		}
		for _, loc := range tmpl.Locations {
			fmt.Printf("  %-20s location\n", loc.Name)
		}
	}

	if len(doc.System.Symbols) > 0 {
		fmt.Printf("\nSystem declarations (%d symbols):\n", len(doc.System.Symbols))
		for _, sym := range doc.System.Symbols {
			kind := autocomplete.KindOf(sym.Type)
			if sym.IsTemplateInstance() {
				kind = autocomplete.KindProcess
			}
			fmt.Printf("  %-20s %s\n", sym.Name, kind)
		}
	}

	if len(diags) > 0 {
		fmt.Println()
		pterm.Warning.Printf("%d parse diagnostics:\n", len(diags))
		for _, d := range diags {
			fmt.Printf("  offset %d: %s\n", d.Offset, d.Message)
		}
		return errors.Newf("model has %d parse diagnostics", len(diags))
	}

	pterm.Success.Println("Model parsed cleanly")
	return nil
}
