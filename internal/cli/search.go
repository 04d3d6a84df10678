package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manadonis/domain-fetcher/internal/config"
)

func createSearchCmd(cfg *config.Config) *cobra.Command {
	var max int
	var tlds []string

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search for available domains",
		Long: `Check suggestions for a base name and report the ones that are
available for registration.

Candidates are checked in order with pacing between lookups, stopping
once enough available domains have been found.

EXAMPLES:
  # Find up to 10 available domains
  domainfetch search techstartup

  # Stop after the first three
  domainfetch search techstartup --max 3

  # Restrict TLDs
  domainfetch search techstartup --tlds com,io
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cfg, args[0], max, tlds)
		},
	}

	cmd.Flags().IntVar(&max, "max", 10, "maximum number of available domains to report")
	cmd.Flags().StringSliceVar(&tlds, "tlds", nil, "TLDs to combine with the name")

	return cmd
}

func runSearch(cfg *config.Config, base string, max int, flagTLDs []string) error {
	ctx := context.Background()
	chk := newChecker(ctx, cfg)

	results := chk.SearchAvailable(ctx, base, max, getTLDs(cfg, flagTLDs))

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Printf("No available domains found for %q\n", base)
		return nil
	}

	fmt.Printf("Available domains for %q:\n\n", base)
	for _, r := range results {
		fmt.Printf("  ✅ %s\n", r.Domain)
	}
	fmt.Printf("\n%d available domain(s)\n", len(results))

	return nil
}
