// Package guard holds the result type shared by the pure guard functions
// in the core packages. Guards evaluate preconditions without side effects.
package guard

import "github.com/example/bindery/internal/errs"

// Result represents the outcome of a guard evaluation.
type Result struct {
	Allowed bool
	Reason  string
	Kind    error // errs kind sentinel explaining why the guard refused
}

// Allow returns a passing result.
func Allow() Result {
	return Result{Allowed: true}
}

// Deny returns a refusing result of the given kind.
func Deny(kind error, reason string) Result {
	return Result{Allowed: false, Reason: reason, Kind: kind}
}

// Error converts the result to a typed error if not allowed.
func (r Result) Error() error {
	if r.Allowed {
		return nil
	}
	kind := r.Kind
	if kind == nil {
		kind = errs.ErrInvalidState
	}
	return &errs.Error{Kind: kind, Message: r.Reason}
}
