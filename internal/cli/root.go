package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/manadonis/domain-fetcher/internal/config"
)

var (
	cfgFile      string
	providerName string
	apiKey       string
	jsonOutput   bool
	verbose      bool
)

// Execute runs the CLI
func Execute(version string) error {
	// A .env file in the working directory can carry RAPIDAPI_KEY and
	// DOMAINFETCH_* variables; a missing file is not an error.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:     "domainfetch <domain> [domain...]",
		Short:   "Domain availability checker",
		Long: `Domainfetch is a CLI for checking whether domains are available for
registration. Each domain goes through a WHOIS registration lookup, then
DNS name resolution, then a third-party availability API, stopping at the
first method that gives a definitive answer.`,
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cfg, args, checkOptions{delayMS: -1})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: domainfetch.toml or .domainfetch.toml)")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "", "third-party availability provider (default from config)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "RapidAPI key for third-party lookups")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(createCheckCmd(cfg))
	rootCmd.AddCommand(createSuggestCmd(cfg))
	rootCmd.AddCommand(createSearchCmd(cfg))
	rootCmd.AddCommand(createAuthCmd(cfg))
	rootCmd.AddCommand(createConfigCmd(cfg))
	rootCmd.AddCommand(createVersionCmd(version))

	return rootCmd.Execute()
}

func createVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("domainfetch %s\n", version)
		},
	}
}

// getProvider returns the provider name from flag, env, project config,
// or the built-in default
func getProvider(cfg *config.Config) string {
	// 1. Command line flag
	if providerName != "" {
		return providerName
	}

	// 2. Environment variable
	if env := os.Getenv("DOMAINFETCH_PROVIDER"); env != "" {
		return env
	}

	// 3. Project config file (TOML)
	if pc := loadProjectConfigSilent(); pc != nil && pc.Provider != "" {
		return pc.Provider
	}

	// 4. Default
	return cfg.Lookup.Provider
}

// getAPIKey returns the RapidAPI key from flag, env, or the credentials
// file entry for the given provider
func getAPIKey(provider string) string {
	// 1. Command line flag
	if apiKey != "" {
		return apiKey
	}

	// 2. Environment variable
	if env := os.Getenv("RAPIDAPI_KEY"); env != "" {
		return env
	}

	// 3. Credentials file (keyed by provider)
	if cred := getCredential(provider); cred != "" {
		return cred
	}

	return ""
}

// getMethods returns the fallback order from the flag or project config;
// nil keeps the built-in order.
func getMethods(flagMethods []string) []string {
	if len(flagMethods) > 0 {
		return flagMethods
	}
	if pc := loadProjectConfigSilent(); pc != nil && len(pc.Methods) > 0 {
		return pc.Methods
	}
	return nil
}

// getTLDs returns the suggestion TLDs from the flag, env config, or
// project config; nil keeps the built-in list.
func getTLDs(cfg *config.Config, flagTLDs []string) []string {
	if len(flagTLDs) > 0 {
		return flagTLDs
	}
	if len(cfg.Suggest.TLDs) > 0 {
		return cfg.Suggest.TLDs
	}
	if pc := loadProjectConfigSilent(); pc != nil && len(pc.TLDs) > 0 {
		return pc.TLDs
	}
	return nil
}
