package causes

import (
	"reflect"

	"github.com/next-trace/scg-causes/contract"
)

// next returns err's immediate cause, or nil when the chain ends here.
// Wrapper wins over Causer when a type implements both.
func next(err error) error {
	switch e := err.(type) {
	case contract.Wrapper:
		return e.Unwrap()
	case contract.Causer:
		return e.Cause()
	}

	return nil
}

// All returns the cause chain of err in traversal order: immediate cause
// first, root cause last. The returned slice excludes err itself and is nil
// when err is nil or has no cause.
func All(err error) []error {
	var chain []error

	for c := next(err); c != nil; c = next(c) {
		chain = append(chain, c)
	}

	return chain
}

// Depth returns the length of err's cause chain without materialising it.
// Depth(err) == len(All(err)) for every err.
func Depth(err error) int {
	n := 0

	for c := next(err); c != nil; c = next(c) {
		n++
	}

	return n
}

// Has reports whether target is one of err's causes.
//
// Comparison is strict identity on the interface value stored in the chain:
// two separately constructed errors with identical contents do not match.
// Is(error) bool hooks are deliberately ignored; use errors.Is for semantic
// matching. A target whose dynamic type is not comparable reports false.
func Has(err, target error) bool {
	if target == nil {
		return false
	}

	// Same guard errors.Is uses: == on a non-comparable dynamic type panics.
	if !reflect.TypeOf(target).Comparable() {
		return false
	}

	for c := next(err); c != nil; c = next(c) {
		if c == target {
			return true
		}
	}

	return false
}

// Root follows cause links to the end of the chain and returns the final
// error. An error without a cause is its own root; Root(nil) is nil.
func Root(err error) error {
	for {
		c := next(err)
		if c == nil {
			return err
		}

		err = c
	}
}

// AtLevel returns the cause at the given zero-based depth, where depth 0 is
// the immediate cause. The second return is false when depth is negative or
// at least the chain length; out-of-range depths never panic.
func AtLevel(err error, depth int) (error, bool) {
	if depth < 0 {
		return nil, false
	}

	i := 0

	for c := next(err); c != nil; c = next(c) {
		if i == depth {
			return c, true
		}

		i++
	}

	return nil, false
}
