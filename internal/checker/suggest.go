package checker

import (
	"context"
	"fmt"
)

// DefaultTLDs is the candidate list used when the caller supplies none.
var DefaultTLDs = []string{"com", "net", "org", "io", "co", "app", "dev", "tech"}

// Prefix/suffix variants applied to the base name. Each combines with
// the leading TLDs only, keeping the candidate set small and bounded.
var variantPatterns = []string{"get%s", "%sapp", "%shq"}

const variantTLDCount = 4

// Suggest produces candidate domains for a base name: one per TLD,
// then each variant crossed with the first TLDs. Order is stable and
// matches generation order.
func Suggest(base string, tlds []string) []string {
	if len(tlds) == 0 {
		tlds = DefaultTLDs
	}

	suggestions := make([]string, 0, len(tlds)+len(variantPatterns)*variantTLDCount)
	for _, tld := range tlds {
		suggestions = append(suggestions, base+"."+tld)
	}

	variantTLDs := tlds
	if len(variantTLDs) > variantTLDCount {
		variantTLDs = variantTLDs[:variantTLDCount]
	}
	for _, pattern := range variantPatterns {
		variant := fmt.Sprintf(pattern, base)
		for _, tld := range variantTLDs {
			suggestions = append(suggestions, variant+"."+tld)
		}
	}

	return suggestions
}

// SearchAvailable checks generated suggestions in order and collects
// the first maxResults that come back available. It stops issuing
// checks as soon as the quota is met, even if suggestions remain.
// Returned order matches suggestion-generation order.
func (c *Checker) SearchAvailable(ctx context.Context, base string, maxResults int, tlds []string) []Result {
	if maxResults <= 0 {
		return nil
	}

	suggestions := Suggest(base, tlds)
	available := make([]Result, 0, maxResults)
	for i, domain := range suggestions {
		if i > 0 {
			c.sleep(ctx, c.searchDelay)
		}

		result := c.Check(ctx, domain)
		if result.Availability == Available {
			available = append(available, result)
			if len(available) >= maxResults {
				break
			}
		}
	}

	return available
}
