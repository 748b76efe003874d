// Package contract exposes the minimal cause-link interfaces used by other packages.
//
// An error participates in a cause chain by implementing one of the two
// accessor conventions below. Implementations must return nil when there is
// no underlying cause.
package contract

// Wrapper is the standard library convention for exposing an error's single
// underlying cause, as produced by fmt.Errorf("...: %w", err) and understood
// by errors.Unwrap.
type Wrapper interface {
	Unwrap() error
}

// Causer is the github.com/pkg/errors convention, still implemented by a lot
// of older error types.
//
// When a type implements both Wrapper and Causer, Wrapper takes precedence
// and its result (even nil) is final.
type Causer interface {
	Cause() error
}
