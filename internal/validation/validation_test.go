package validation

import (
	"strings"
	"testing"
)

func TestValidateDomain(t *testing.T) {
	longLabel := strings.Repeat("a", 63)
	tooLongLabel := strings.Repeat("a", 64)
	// Four 63-char labels plus a TLD: every label valid, total length over 253.
	tooLongDomain := strings.Join([]string{longLabel, longLabel, longLabel, longLabel}, ".") + ".com"

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "a.com", false},
		{"valid multi-label", "www.example.com", false},
		{"valid with hyphens", "my-domain.com", false},
		{"valid with digits", "domain123.net", false},
		{"valid uppercase", "Example.COM", false},
		{"valid single-char label", "a.bc", false},
		{"valid max label length", longLabel + ".com", false},
		{"label too long", tooLongLabel + ".com", true},
		{"total too long", tooLongDomain, true},
		{"empty", "", true},
		{"no dot", "example", true},
		{"leading hyphen", "-bad.com", true},
		{"trailing hyphen in label", "bad-.com", true},
		{"empty label", "a..com", true},
		{"trailing dot", "example.com.", true},
		{"leading dot", ".example.com", true},
		{"underscore", "my_domain.com", true},
		{"space", "my domain.com", true},
		{"tld too short", "a.c", true},
		{"numeric tld", "example.123", true},
		{"mixed tld", "example.c0m", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomain(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDomain(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"example.com", true},
		{"sub.example.co", true},
		{"", false},
		{"-bad.com", false},
		{"a.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := IsValidDomain(tt.input)
			if got != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
