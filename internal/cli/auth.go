package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/manadonis/domain-fetcher/internal/checker/thirdparty"
	"github.com/manadonis/domain-fetcher/internal/config"
)

// Credentials stores API keys per provider
type Credentials struct {
	Providers map[string]ProviderCredential `yaml:"providers"`
}

// ProviderCredential stores the credential for a single provider
type ProviderCredential struct {
	APIKey string `yaml:"api_key"`
}

func createAuthCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	cmd.AddCommand(createAuthLoginCmd(cfg))
	cmd.AddCommand(createAuthLogoutCmd(cfg))
	cmd.AddCommand(createAuthStatusCmd())

	return cmd
}

func createAuthLoginCmd(cfg *config.Config) *cobra.Command {
	var providerFlag string
	var apiKeyFlag string
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a provider API key",
		Long: `Save a RapidAPI key for a third-party availability provider.

The key is stored in ~/.domainfetch/credentials with secure file
permissions and verified with a probe lookup before saving.

EXAMPLES:
  # Interactive login (prompts for the key)
  domainfetch auth login

  # Login for a specific provider
  domainfetch auth login --provider domaindb

  # Non-interactive login (for CI)
  domainfetch auth login --api-key $RAPIDAPI_KEY --no-verify
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthLogin(cfg, providerFlag, apiKeyFlag, noVerify)
		},
	}

	cmd.Flags().StringVar(&providerFlag, "provider", "", "provider name (default from config)")
	cmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "RapidAPI key (prompts if not provided)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip the probe lookup")

	return cmd
}

func createAuthLogoutCmd(cfg *config.Config) *cobra.Command {
	var providerFlag string
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		Long: `Remove the saved credential for a provider.

EXAMPLES:
  # Logout from the default provider
  domainfetch auth logout

  # Logout from a specific provider
  domainfetch auth logout --provider domaindb

  # Clear all credentials
  domainfetch auth logout --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthLogout(cfg, providerFlag, allFlag)
		},
	}

	cmd.Flags().StringVar(&providerFlag, "provider", "", "provider name (default from config)")
	cmd.Flags().BoolVar(&allFlag, "all", false, "clear all credentials")

	return cmd
}

func createAuthStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show stored credentials",
		Long: `Show which providers have a stored credential. Keys are masked.

EXAMPLES:
  domainfetch auth status
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthStatus()
		},
	}

	return cmd
}

func runAuthLogin(cfg *config.Config, provider, apiKeyInput string, noVerify bool) error {
	// Determine provider
	if provider == "" {
		provider = getProvider(cfg)
	}

	// route53 authenticates through the AWS credential chain, there is
	// no RapidAPI key to store for it.
	if provider == thirdparty.Route53Provider {
		return fmt.Errorf("provider %s uses the AWS credential chain; no API key to store", provider)
	}

	// Get API key
	key := apiKeyInput
	if key == "" {
		// Prompt for API key
		fmt.Printf("Enter RapidAPI key for %s: ", provider)

		// Try to read without echo
		stdinFd := int(os.Stdin.Fd())
		if term.IsTerminal(stdinFd) {
			byteKey, err := term.ReadPassword(stdinFd)
			fmt.Println() // New line after hidden input
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}
			key = string(byteKey)
		} else {
			// Non-terminal, read from stdin
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				return fmt.Errorf("failed to read API key: %w", err)
			}
			key = strings.TrimSpace(line)
		}
	}

	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	// Verify the key with a probe lookup
	if !noVerify {
		fmt.Printf("Verifying credentials with %s...\n", provider)
		strategy := thirdparty.New(provider, key, thirdpartyClientOptions(cfg)...)
		if err := strategy.Verify(context.Background()); err != nil {
			return fmt.Errorf("failed to verify credentials: %w", err)
		}
	}

	// Save credentials
	if err := saveCredential(provider, key); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	// Mask key for display
	masked := maskAPIKey(key)
	fmt.Printf("✅ Credential saved for %s (key: %s)\n", provider, masked)
	fmt.Printf("   Credentials saved to %s\n", credentialsFilePath())

	return nil
}

func runAuthLogout(cfg *config.Config, provider string, all bool) error {
	if all {
		// Remove all credentials
		path := credentialsFilePath()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove credentials: %w", err)
		}
		fmt.Println("✅ All credentials cleared")
		return nil
	}

	if provider == "" {
		provider = getProvider(cfg)
	}

	creds, err := loadCredentials()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No credentials found for %s\n", provider)
			return nil
		}
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	if _, exists := creds.Providers[provider]; !exists {
		fmt.Printf("No credentials found for %s\n", provider)
		return nil
	}

	delete(creds.Providers, provider)

	if err := writeCredentials(creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	fmt.Printf("✅ Logged out from %s\n", provider)
	return nil
}

func runAuthStatus() error {
	creds, err := loadCredentials()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No credentials stored")
			fmt.Println("\nRun 'domainfetch auth login' to store a RapidAPI key")
			return nil
		}
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	if len(creds.Providers) == 0 {
		fmt.Println("No credentials stored")
		fmt.Println("\nRun 'domainfetch auth login' to store a RapidAPI key")
		return nil
	}

	fmt.Println("Stored credentials:")
	for provider, cred := range creds.Providers {
		fmt.Printf("  • %s (key: %s)\n", provider, maskAPIKey(cred.APIKey))
	}

	return nil
}

// Credential file helpers

func credentialsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".domainfetch"
	}
	return filepath.Join(home, ".domainfetch")
}

func credentialsFilePath() string {
	return filepath.Join(credentialsDir(), "credentials")
}

func loadCredentials() (*Credentials, error) {
	path := credentialsFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	if creds.Providers == nil {
		creds.Providers = make(map[string]ProviderCredential)
	}

	return &creds, nil
}

func writeCredentials(creds *Credentials) error {
	dir := credentialsDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(creds)
	if err != nil {
		return err
	}

	path := credentialsFilePath()
	return os.WriteFile(path, data, 0600) // Secure permissions
}

func saveCredential(provider, key string) error {
	creds, err := loadCredentials()
	if err != nil {
		if os.IsNotExist(err) {
			creds = &Credentials{Providers: make(map[string]ProviderCredential)}
		} else {
			return err
		}
	}

	creds.Providers[provider] = ProviderCredential{APIKey: key}
	return writeCredentials(creds)
}

func getCredential(provider string) string {
	creds, err := loadCredentials()
	if err != nil {
		return ""
	}
	if cred, ok := creds.Providers[provider]; ok {
		return cred.APIKey
	}
	return ""
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:8] + "..." + key[len(key)-4:]
}
