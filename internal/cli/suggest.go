package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manadonis/domain-fetcher/internal/checker"
	"github.com/manadonis/domain-fetcher/internal/config"
)

func createSuggestCmd(cfg *config.Config) *cobra.Command {
	var tlds []string
	var check bool

	cmd := &cobra.Command{
		Use:   "suggest <name>",
		Short: "Generate domain name suggestions",
		Long: `Generate candidate domains for a base name.

The name is combined with each TLD, then get/app/hq variants are added
for the first four TLDs.

EXAMPLES:
  # Suggestions with the default TLD list
  domainfetch suggest mynewapp

  # Restrict TLDs
  domainfetch suggest mynewapp --tlds com,io,app

  # Also check availability of each suggestion
  domainfetch suggest mynewapp --check
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cfg, args[0], tlds, check)
		},
	}

	cmd.Flags().StringSliceVar(&tlds, "tlds", nil, "TLDs to combine with the name")
	cmd.Flags().BoolVar(&check, "check", false, "check availability of each suggestion")

	return cmd
}

func runSuggest(cfg *config.Config, base string, flagTLDs []string, check bool) error {
	suggestions := checker.Suggest(base, getTLDs(cfg, flagTLDs))

	if !check {
		if jsonOutput {
			return printJSON(map[string]any{
				"base":        base,
				"suggestions": suggestions,
			})
		}

		fmt.Printf("Suggestions for %q:\n\n", base)
		for _, s := range suggestions {
			fmt.Printf("  %s\n", s)
		}
		fmt.Printf("\n%d suggestion(s)\n", len(suggestions))
		return nil
	}

	ctx := context.Background()
	chk := newChecker(ctx, cfg)
	results := chk.CheckAll(ctx, suggestions)

	if jsonOutput {
		return printJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tSTATUS\tMETHOD")
	for _, r := range results {
		status := r.Status()
		if status == "" {
			status = "UNKNOWN"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Domain, status, r.Method)
	}
	w.Flush()

	return nil
}
