// Package registration implements the registration-record lookup
// strategy backed by WHOIS.
package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"github.com/manadonis/domain-fetcher/internal/checker"
)

// Method is the label recorded on results produced by this strategy.
const Method = "registration_lookup"

// QueryFunc fetches the raw registration record for a domain.
type QueryFunc func(domain string) (string, error)

// Strategy queries WHOIS registration records. Absence of a record
// reads as availability; any transient provider failure downgrades to
// unknown. Registries differ in how they signal "no such domain", so
// an availability verdict here is a strong hint, not proof.
type Strategy struct {
	query QueryFunc
}

// Option configures a Strategy
type Option func(*Strategy)

// WithQuery replaces the WHOIS query function (used by tests)
func WithQuery(fn QueryFunc) Option {
	return func(s *Strategy) {
		s.query = fn
	}
}

// New creates the registration-record strategy. No explicit timeout;
// the whois library default applies.
func New(opts ...Option) *Strategy {
	s := &Strategy{
		query: func(domain string) (string, error) {
			return whois.Whois(domain)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name implements checker.Strategy.
func (s *Strategy) Name() string { return checker.MethodRegistration }

// Method implements checker.Strategy.
func (s *Strategy) Method() string { return Method }

// Check looks up the domain's registration record.
func (s *Strategy) Check(ctx context.Context, domain string) checker.Result {
	raw, err := s.query(domain)
	if err != nil {
		return checker.Result{
			Domain:       domain,
			Availability: checker.Unknown,
			Err:          fmt.Sprintf("whois query failed: %v", err),
			Method:       Method,
		}
	}

	info, parseErr := whoisparser.Parse(raw)
	return resultFromRecord(domain, info, parseErr)
}

// resultFromRecord maps a parsed record (or a parser signal) onto an
// availability verdict.
func resultFromRecord(domain string, info whoisparser.WhoisInfo, parseErr error) checker.Result {
	switch {
	case errors.Is(parseErr, whoisparser.ErrNotFoundDomain):
		return checker.Result{
			Domain:       domain,
			Availability: checker.Available,
			Details:      map[string]any{"whois_data": "No registration found"},
			Method:       Method,
		}
	case errors.Is(parseErr, whoisparser.ErrReservedDomain):
		return restrictedResult(domain, "reserved")
	case errors.Is(parseErr, whoisparser.ErrPremiumDomain):
		return restrictedResult(domain, "premium")
	case errors.Is(parseErr, whoisparser.ErrBlockedDomain):
		return restrictedResult(domain, "blocked")
	case parseErr != nil:
		return checker.Result{
			Domain:       domain,
			Availability: checker.Unknown,
			Err:          fmt.Sprintf("whois parse failed: %v", parseErr),
			Method:       Method,
		}
	}

	if info.Domain == nil {
		return checker.Result{
			Domain:       domain,
			Availability: checker.Available,
			Details:      map[string]any{"whois_data": "No registration found"},
			Method:       Method,
		}
	}

	details := make(map[string]any)
	if info.Registrar != nil && info.Registrar.Name != "" {
		details["registrar"] = info.Registrar.Name
	}
	if info.Domain.CreatedDate != "" {
		details["creation_date"] = info.Domain.CreatedDate
	}
	if info.Domain.ExpirationDate != "" {
		details["expiration_date"] = info.Domain.ExpirationDate
	}
	if len(info.Domain.NameServers) > 0 {
		details["name_servers"] = info.Domain.NameServers
	}
	if len(info.Domain.Status) > 0 {
		details["status"] = info.Domain.Status
	}

	return checker.Result{
		Domain:       domain,
		Availability: checker.Registered,
		Details:      details,
		Method:       Method,
	}
}

// restrictedResult covers names the registry will not hand out through
// normal registration (reserved, premium-priced, brand-blocked). Not
// obtainable reads as taken.
func restrictedResult(domain, restriction string) checker.Result {
	return checker.Result{
		Domain:       domain,
		Availability: checker.Registered,
		Details:      map[string]any{"restriction": restriction},
		Method:       Method,
	}
}
