//go:build e2e

package e2e

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheck_NoArguments tests that the bare command rejects an empty
// domain list instead of hanging or checking nothing
func TestCheck_NoArguments(t *testing.T) {
	isolate(t)

	_, err := runCLI(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

// TestCheck_InvalidDomainFormat tests the report for a domain that
// fails validation before any lookup method runs
func TestCheck_InvalidDomainFormat(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "not_a_domain")
	require.NoError(t, err)

	assert.Contains(t, out, "🔍 Domain Availability Check Results:")
	assert.Contains(t, out, "❓ UNKNOWN (Invalid domain format)")
	assert.NotContains(t, out, "Method:")
}

// TestCheck_InvalidDomainJSON tests the machine-readable form of a
// validation failure
func TestCheck_InvalidDomainJSON(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "check", "--json", "not_a_domain")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	assert.Equal(t, "not_a_domain", results[0]["domain"])
	assert.Equal(t, "unknown", results[0]["availability"])
	assert.Equal(t, "Invalid domain format", results[0]["error"])
	assert.NotContains(t, results[0], "method")
}

// TestCheck_MultipleDomains tests that a batch produces one report
// entry per input, in input order
func TestCheck_MultipleDomains(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "check", "--delay", "0", "--json", "bad..name", "another_bad")
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "bad..name", results[0]["domain"])
	assert.Equal(t, "another_bad", results[1]["domain"])
}

// TestCheck_UnknownMethodsExhausted tests that a chain made entirely of
// unrecognized method names reports failure rather than guessing
func TestCheck_UnknownMethodsExhausted(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "check", "--methods", "nope,alsonope", "brandnewidea12345.com")
	require.NoError(t, err)

	assert.Contains(t, out, "❓ UNKNOWN (All methods failed)")
	assert.NotContains(t, out, "Method:")
}

// TestCheck_ThirdPartyWithoutCredential tests the third-party method
// surfacing its missing-key failure through the report, including the
// provider-qualified method label
func TestCheck_ThirdPartyWithoutCredential(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "check", "--methods", "third_party", "brandnewidea12345.com")
	require.NoError(t, err)

	assert.Contains(t, out, "❓ UNKNOWN (RapidAPI key not configured)")
	assert.Contains(t, out, "Method: third_party_whoisapi")
}

// TestCheck_ProviderFlag tests that --provider changes which backend
// the third-party method is wired to
func TestCheck_ProviderFlag(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "check", "--provider", "domaindb", "--methods", "third_party", "brandnewidea12345.com")
	require.NoError(t, err)

	assert.Contains(t, out, "Method: third_party_domaindb")
}

// TestCheck_UnknownProvider tests that a bogus provider name is
// reported per domain instead of failing at startup
func TestCheck_UnknownProvider(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "check", "--provider", "bogus", "--api-key", "some-key", "--methods", "third_party", "brandnewidea12345.com")
	require.NoError(t, err)

	assert.Contains(t, out, "❓ UNKNOWN")
	assert.Contains(t, out, "unknown provider")
	assert.Contains(t, out, "Method: third_party_bogus")
}
