package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/manadonis/domain-fetcher/internal/checker/thirdparty"
	"github.com/manadonis/domain-fetcher/internal/config"
)

// projectConfigFiles is the search order for project config files
var projectConfigFiles = []string{"domainfetch.toml", ".domainfetch.toml"}

// ProjectConfig is the project-level TOML configuration
type ProjectConfig struct {
	Provider string   `toml:"provider,omitempty"`
	Methods  []string `toml:"methods,omitempty"`
	TLDs     []string `toml:"tlds,omitempty"`
}

func createConfigCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	cmd.AddCommand(createConfigInitCmd())
	cmd.AddCommand(createConfigShowCmd(cfg))

	return cmd
}

func createConfigInitCmd() *cobra.Command {
	var provider string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create config file",
		Long: `Create a domainfetch.toml configuration file in the current directory.

This file stores project-specific settings like the third-party
provider, the method order, and the TLD list for suggestions.

EXAMPLES:
  # Create config with the default provider
  domainfetch config init

  # Create config for a specific provider
  domainfetch config init --provider domaindb

  # Overwrite existing config
  domainfetch config init --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(provider, force)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "whoisapi", "third-party availability provider")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config")

	return cmd
}

func createConfigShowCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current config",
		Long: `Display the current configuration.

Shows every configuration source in precedence order and the effective
values that checks will use.

EXAMPLES:
  domainfetch config show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cfg)
		},
	}

	return cmd
}

func runConfigInit(provider string, force bool) error {
	configPath := "domainfetch.toml"

	// Check if any config file already exists
	for _, cfgFile := range projectConfigFiles {
		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", cfgFile)
		}
	}

	// Generate TOML config
	content := fmt.Sprintf(`# Domainfetch project configuration

# Third-party availability provider: one of %s
provider = "%s"

# Method order for availability checks
# methods = ["registration", "resolution", "third_party"]

# TLDs used by suggest and search
# tlds = ["com", "net", "org", "io", "co", "app", "dev", "tech"]
`, strings.Join(thirdparty.Providers(), ", "), provider)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("  Provider: %s\n", provider)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Edit %s to customize settings\n", configPath)
	fmt.Println("  2. Run 'domainfetch auth login' to store a RapidAPI key")
	fmt.Println("  3. Run 'domainfetch example.com' to check a domain")

	return nil
}

func runConfigShow(cfg *config.Config) error {
	fmt.Println("Configuration sources (in order of precedence):")
	fmt.Println()

	// 1. Command line flags
	fmt.Println("1. Command line flags")
	fmt.Println("   --provider, --api-key, --config")
	fmt.Println()

	// 2. Environment variables
	fmt.Println("2. Environment variables")
	if env := os.Getenv("DOMAINFETCH_PROVIDER"); env != "" {
		fmt.Printf("   DOMAINFETCH_PROVIDER=%s\n", env)
	} else {
		fmt.Println("   DOMAINFETCH_PROVIDER=(not set)")
	}
	if env := os.Getenv("RAPIDAPI_KEY"); env != "" {
		fmt.Printf("   RAPIDAPI_KEY=%s\n", maskAPIKey(env))
	} else {
		fmt.Println("   RAPIDAPI_KEY=(not set)")
	}
	fmt.Println()

	// 3. Local project config
	fmt.Println("3. Project config (domainfetch.toml or .domainfetch.toml)")
	projectConfig, configPath, err := loadProjectConfig()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("   (not found)")
		} else {
			fmt.Printf("   Error: %v\n", err)
		}
	} else {
		fmt.Printf("   Loaded from: %s\n", configPath)
		if projectConfig.Provider != "" {
			fmt.Printf("   provider: %s\n", projectConfig.Provider)
		}
		if len(projectConfig.Methods) > 0 {
			fmt.Printf("   methods: %v\n", projectConfig.Methods)
		}
		if len(projectConfig.TLDs) > 0 {
			fmt.Printf("   tlds: %v\n", projectConfig.TLDs)
		}
	}
	fmt.Println()

	// 4. Credentials
	fmt.Println("4. Credentials (~/.domainfetch/credentials)")
	creds, err := loadCredentials()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("   (not found)")
		} else {
			fmt.Printf("   Error: %v\n", err)
		}
	} else {
		if len(creds.Providers) == 0 {
			fmt.Println("   (no credentials stored)")
		} else {
			for provider, cred := range creds.Providers {
				fmt.Printf("   %s: %s\n", provider, maskAPIKey(cred.APIKey))
			}
		}
	}
	fmt.Println()

	// Effective config
	provider := getProvider(cfg)
	fmt.Println("Effective configuration:")
	fmt.Printf("   Provider: %s\n", provider)
	if key := getAPIKey(provider); key != "" {
		fmt.Printf("   API Key:  %s\n", maskAPIKey(key))
	} else {
		fmt.Println("   API Key:  (not set)")
	}
	fmt.Printf("   Timeout:  %ds\n", cfg.Lookup.HTTPTimeout)
	fmt.Printf("   Rate:     %d requests/minute\n", cfg.Lookup.RequestsPerMinute)
	fmt.Printf("   Pacing:   %dms between methods, %dms between domains, %dms during search\n",
		cfg.Pacing.MethodDelayMS, cfg.Pacing.DomainDelayMS, cfg.Pacing.SearchDelayMS)

	return nil
}

// loadProjectConfig loads the project config from the first matching config file.
// Returns the config, the path it was loaded from, and an error.
func loadProjectConfig() (*ProjectConfig, string, error) {
	// If --config flag was provided, use that directly
	if cfgFile != "" {
		config, err := loadProjectConfigFromPath(cfgFile)
		if err != nil {
			return nil, cfgFile, err
		}
		return config, cfgFile, nil
	}

	// Search for config files in order
	for _, name := range projectConfigFiles {
		if _, err := os.Stat(name); err == nil {
			config, err := loadProjectConfigFromPath(name)
			if err != nil {
				return nil, name, err
			}
			return config, name, nil
		}
	}
	return nil, "", os.ErrNotExist
}

// loadProjectConfigFromPath loads a project config from a specific path
func loadProjectConfigFromPath(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ProjectConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	return &config, nil
}

// loadProjectConfigSilent loads the project config without returning errors for missing files.
// Returns nil if the file doesn't exist, but reports parse failures.
func loadProjectConfigSilent() *ProjectConfig {
	config, _, err := loadProjectConfig()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		// Show actionable errors (parse failures)
		fmt.Fprintf(os.Stderr, "Warning: failed to load project config: %v\n", err)
		return nil
	}
	return config
}
