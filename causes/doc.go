// Package causes provides read-only traversal and search over an error's
// cause chain.
//
// A cause chain is the singly linked sequence of errors reached by following
// cause links from a starting error: its immediate cause first, the root
// cause last, the starting error itself excluded. A link is anything exposed
// through contract.Wrapper (Unwrap() error) or contract.Causer
// (Cause() error); errors produced by fmt.Errorf with %w participate
// naturally.
//
// Key characteristics:
//   - Every operation is a pure function; nothing is constructed or mutated
//   - Nil-safe and total: absence is reported with a comma-ok or an empty
//     slice, never a panic
//   - Has compares by identity, not by errors.Is semantics
//   - Type-directed search (HasType, FirstOfType, LastOfType, AllOfType) is
//     generic over any error type, including interfaces
//   - Traversal is iterative, so chain depth never grows the call stack
//
// Chains are assumed acyclic and finite; a cyclic chain makes traversal loop
// forever. Multi-error containers (Unwrap() []error) are not chains and
// terminate the walk.
package causes
