// Package validation provides input validation for Domain Fetcher.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

// Domain label validation
// Labels: alphanumeric with interior hyphens, 1-63 chars, no edge hyphens
var labelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// The final label (top-level domain) must be at least two letters
var tldRegex = regexp.MustCompile(`^[a-zA-Z]{2,}$`)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// ValidateDomain validates a domain name string
func ValidateDomain(domain string) error {
	if domain == "" {
		return errors.New("domain cannot be empty")
	}
	if len(domain) > maxDomainLength {
		return errors.New("domain too long (max 253 chars)")
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return errors.New("domain must contain at least two dot-separated labels")
	}

	for _, label := range labels {
		if label == "" {
			return errors.New("domain contains an empty label")
		}
		if len(label) > maxLabelLength {
			return errors.New("domain label too long (max 63 chars)")
		}
		if !labelRegex.MatchString(label) {
			return errors.New("invalid domain label: must be alphanumeric with interior hyphens")
		}
	}

	tld := labels[len(labels)-1]
	if !tldRegex.MatchString(tld) {
		return errors.New("invalid top-level domain: must be at least 2 letters")
	}

	return nil
}

// IsValidDomain reports whether a string is syntactically a plausible
// domain name. Never fails: malformed input returns false.
func IsValidDomain(domain string) bool {
	return ValidateDomain(domain) == nil
}
