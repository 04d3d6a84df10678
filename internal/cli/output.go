package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/manadonis/domain-fetcher/internal/checker"
)

// printResults renders the classic availability report: one left-padded
// line per domain, the winning method indented underneath.
func printResults(results []checker.Result) {
	fmt.Println("🔍 Domain Availability Check Results:")
	fmt.Println()

	for _, r := range results {
		fmt.Printf("%-30s %s\n", r.Domain, statusString(r))
		if r.Method != "" {
			fmt.Printf("%-30s Method: %s\n", "", r.Method)
		}
		fmt.Println()
	}
}

func statusString(r checker.Result) string {
	switch r.Availability {
	case checker.Available:
		return "✅ AVAILABLE"
	case checker.Registered:
		return "❌ TAKEN"
	default:
		if r.Err != "" {
			return fmt.Sprintf("❓ UNKNOWN (%s)", r.Err)
		}
		return "❓ UNKNOWN"
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
