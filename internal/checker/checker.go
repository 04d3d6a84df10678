package checker

import (
	"context"
	"log/slog"
	"time"

	"github.com/manadonis/domain-fetcher/internal/validation"
)

// Method tokens accepted in a fallback chain.
const (
	MethodRegistration = "registration"
	MethodResolution   = "resolution"
	MethodThirdParty   = "third_party"
)

// DefaultMethods is the standard fallback order. Earlier methods take
// precedence when both produce a clean answer.
var DefaultMethods = []string{MethodRegistration, MethodResolution, MethodThirdParty}

// Pacing defaults. Courtesy delays for upstream rate limits, not
// correctness-bearing.
const (
	DefaultMethodDelay = 500 * time.Millisecond
	DefaultDomainDelay = time.Second
	DefaultSearchDelay = 800 * time.Millisecond
)

// SleepFunc pauses between lookups. Implementations must return early
// when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration)

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Checker runs the fallback chain over registered strategies. It holds
// no per-domain state; a single Checker is reused across calls.
type Checker struct {
	registry    *Registry
	methods     []string
	methodDelay time.Duration
	domainDelay time.Duration
	searchDelay time.Duration
	sleep       SleepFunc
	logger      *slog.Logger
}

// Option configures a Checker
type Option func(*Checker)

// WithMethods sets the default fallback order
func WithMethods(methods ...string) Option {
	return func(c *Checker) {
		c.methods = methods
	}
}

// WithMethodDelay sets the pacing delay between strategies
func WithMethodDelay(d time.Duration) Option {
	return func(c *Checker) {
		c.methodDelay = d
	}
}

// WithDomainDelay sets the pacing delay between domains in a batch
func WithDomainDelay(d time.Duration) Option {
	return func(c *Checker) {
		c.domainDelay = d
	}
}

// WithSearchDelay sets the pacing delay between suggestion checks
func WithSearchDelay(d time.Duration) Option {
	return func(c *Checker) {
		c.searchDelay = d
	}
}

// WithSleep replaces the pacing sleeper (used by tests to avoid
// wall-clock waits)
func WithSleep(fn SleepFunc) Option {
	return func(c *Checker) {
		c.sleep = fn
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker over the given strategy registry.
func New(registry *Registry, opts ...Option) *Checker {
	c := &Checker{
		registry:    registry,
		methods:     DefaultMethods,
		methodDelay: DefaultMethodDelay,
		domainDelay: DefaultDomainDelay,
		searchDelay: DefaultSearchDelay,
		sleep:       sleepContext,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check resolves one domain through the fallback chain. Strategies run
// in the configured order (or the explicit override); the chain stops
// at the first result that is definitive AND error-free. A definitive
// result carrying an error does not stop the chain: the current
// strategies never produce that combination, so the clause is a safety
// net for future strategies that might.
//
// Check never returns an error; every failure is downgraded into the
// Result so batch callers always get one entry per domain.
func (c *Checker) Check(ctx context.Context, domain string, methods ...string) Result {
	if !validation.IsValidDomain(domain) {
		return Result{
			Domain:       domain,
			Availability: Unknown,
			Err:          "Invalid domain format",
		}
	}

	order := c.methods
	if len(methods) > 0 {
		order = methods
	}

	var last Result
	ran := false
	for _, name := range order {
		strategy, ok := c.registry.Get(name)
		if !ok {
			c.logger.Debug("skipping unknown method", "method", name)
			continue
		}

		if ran {
			c.sleep(ctx, c.methodDelay)
		}

		result := strategy.Check(ctx, domain)
		last = result
		ran = true

		c.logger.Debug("strategy finished",
			"domain", domain,
			"strategy", name,
			"availability", result.Availability,
			"error", result.Err,
		)

		if result.Availability.Definitive() && result.Err == "" {
			return result
		}
	}

	if !ran {
		return Result{
			Domain:       domain,
			Availability: Unknown,
			Err:          "All methods failed",
		}
	}

	return last
}

// CheckAll checks each domain in order, pacing between domains.
// Returns exactly one Result per input domain, in input order,
// regardless of individual outcomes.
func (c *Checker) CheckAll(ctx context.Context, domains []string) []Result {
	results := make([]Result, 0, len(domains))
	for i, domain := range domains {
		if i > 0 {
			c.sleep(ctx, c.domainDelay)
		}
		results = append(results, c.Check(ctx, domain))
	}
	return results
}
