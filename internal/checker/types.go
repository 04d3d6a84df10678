// Package checker resolves domain availability through a fixed-order
// fallback chain of independent lookup strategies (registration-record
// query, name-resolution probe, third-party HTTP lookup). The first
// strategy that yields a definitive, error-free answer wins; there is
// no voting or weighting across strategies.
package checker

import "encoding/json"

// Availability is the tri-state outcome of a lookup. Unknown is a
// first-class outcome, not an error.
type Availability string

const (
	// Unknown means no strategy produced a definitive answer.
	Unknown Availability = "unknown"
	// Available means the domain appears unregistered.
	Available Availability = "available"
	// Registered means the domain appears taken.
	Registered Availability = "registered"
)

// Definitive reports whether the outcome is a firm yes/no.
func (a Availability) Definitive() bool {
	return a == Available || a == Registered
}

// StatusLabel returns the human-readable status label, or "" for unknown.
func (a Availability) StatusLabel() string {
	switch a {
	case Available:
		return "AVAILABLE"
	case Registered:
		return "REGISTERED"
	default:
		return ""
	}
}

// Result is the outcome of checking one domain. Exactly one Result is
// produced per input domain; no error ever escapes a check. A
// definitive Availability is mutually exclusive with a populated Err;
// Unknown may carry one.
type Result struct {
	// Domain is the input string, unmodified.
	Domain string `json:"domain"`

	// Availability is the tri-state verdict.
	Availability Availability `json:"availability"`

	// Err holds a diagnostic message when the producing strategy
	// failed. Free text, not a structured code.
	Err string `json:"error,omitempty"`

	// Details carries strategy-specific metadata (registrar, dates,
	// raw payload fragments). Shape varies by strategy; callers must
	// not assume fixed fields.
	Details map[string]any `json:"details,omitempty"`

	// Method names the strategy that produced this result, or is
	// empty if validation rejected the domain before any ran.
	Method string `json:"method,omitempty"`
}

// Status returns the display label for the result's availability.
func (r Result) Status() string {
	return r.Availability.StatusLabel()
}

// MarshalJSON includes the derived status label in the wire form so
// consumers do not have to re-derive it from the availability value.
// The label is absent for unknown results.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		plain
		Status string `json:"status,omitempty"`
	}{plain(r), r.Status()})
}
