package checker

import (
	"context"
	"sort"
)

// Strategy is one self-contained lookup method contributing one vote
// to the fallback chain. Implementations convert every failure into a
// Result value; Check never returns a Go error and never panics on
// network trouble.
type Strategy interface {
	// Name is the token the strategy registers under ("registration",
	// "resolution", "third_party").
	Name() string

	// Method is the reporting label recorded on results
	// ("registration_lookup", "name_resolution", "third_party_<provider>").
	Method() string

	// Check attempts the lookup for one domain.
	Check(ctx context.Context, domain string) Result
}

// Registry holds all registered lookup strategies.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty strategy registry.
// Note: Import cycle prevention - strategies are registered by the caller.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
	}
}

// Register adds a strategy to the registry.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Name()] = s
}

// Get retrieves a strategy by name.
func (r *Registry) Get(name string) (Strategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}

// Names returns the registered method tokens, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
