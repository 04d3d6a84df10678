// Package resolution implements the name-resolution probe strategy.
package resolution

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/manadonis/domain-fetcher/internal/checker"
)

// Method is the label recorded on results produced by this strategy.
const Method = "name_resolution"

// hostResolver is the subset of net.Resolver the strategy needs.
type hostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Strategy probes whether a domain resolves to any address. Resolution
// means the name is live, hence taken; a name-not-found failure reads
// as availability. The heuristic is cheap and unsound in both
// directions (registered names without address records, registrar
// wildcard DNS) and serves as one vote in the chain, never alone.
type Strategy struct {
	resolver hostResolver
}

// Option configures a Strategy
type Option func(*Strategy)

// WithResolver replaces the address resolver (used by tests)
func WithResolver(r hostResolver) Option {
	return func(s *Strategy) {
		s.resolver = r
	}
}

// New creates the name-resolution strategy on the platform resolver.
func New(opts ...Option) *Strategy {
	s := &Strategy{
		resolver: net.DefaultResolver,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name implements checker.Strategy.
func (s *Strategy) Name() string { return checker.MethodResolution }

// Method implements checker.Strategy.
func (s *Strategy) Method() string { return Method }

// Check probes the domain for an address record.
func (s *Strategy) Check(ctx context.Context, domain string) checker.Result {
	addrs, err := s.resolver.LookupHost(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return checker.Result{
				Domain:       domain,
				Availability: checker.Available,
				Details:      map[string]any{"resolves": false},
				Method:       Method,
			}
		}
		return checker.Result{
			Domain:       domain,
			Availability: checker.Unknown,
			Err:          fmt.Sprintf("name resolution failed: %v", err),
			Method:       Method,
		}
	}

	return checker.Result{
		Domain:       domain,
		Availability: checker.Registered,
		Details:      map[string]any{"resolves": true, "addresses": addrs},
		Method:       Method,
	}
}
