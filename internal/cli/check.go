package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/manadonis/domain-fetcher/internal/checker"
	"github.com/manadonis/domain-fetcher/internal/config"
)

// checkOptions carries per-invocation overrides for runCheck.
type checkOptions struct {
	methods []string
	delayMS int // pacing between domains, negative means config value
}

func createCheckCmd(cfg *config.Config) *cobra.Command {
	var methods []string
	var delayMS int

	cmd := &cobra.Command{
		Use:   "check <domain> [domain...]",
		Short: "Check domain availability",
		Long: `Check whether one or more domains are available for registration.

Methods run in order until one gives a definitive answer:
  registration   WHOIS registration lookup
  resolution     DNS name resolution
  third_party    provider availability API

EXAMPLES:
  # Check a single domain
  domainfetch check example.com

  # Check several domains
  domainfetch check example.com example.net example.org

  # Skip the third-party API
  domainfetch check --methods registration,resolution example.com

  # Machine-readable output
  domainfetch check --json example.com
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cfg, args, checkOptions{
				methods: methods,
				delayMS: delayMS,
			})
		},
	}

	cmd.Flags().StringSliceVar(&methods, "methods", nil, "method order (registration, resolution, third_party)")
	cmd.Flags().IntVar(&delayMS, "delay", -1, "milliseconds to wait between domains (default from config)")

	return cmd
}

func runCheck(cfg *config.Config, domains []string, opts checkOptions) error {
	ctx := context.Background()

	var checkerOpts []checker.Option
	if methods := getMethods(opts.methods); len(methods) > 0 {
		checkerOpts = append(checkerOpts, checker.WithMethods(methods...))
	}
	if opts.delayMS >= 0 {
		checkerOpts = append(checkerOpts, checker.WithDomainDelay(time.Duration(opts.delayMS)*time.Millisecond))
	}

	chk := newChecker(ctx, cfg, checkerOpts...)
	results := chk.CheckAll(ctx, domains)

	if jsonOutput {
		return printJSON(results)
	}

	printResults(results)
	return nil
}
