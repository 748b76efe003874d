package causes

// HasType reports whether some cause of err is of type T. Like all searches
// in this package it inspects causes only, never err itself.
//
// T may be a concrete error type or an interface; an interface matches every
// implementation, so searching for a general type finds more specific ones.
func HasType[T error](err error) bool {
	for c := next(err); c != nil; c = next(c) {
		if _, ok := c.(T); ok {
			return true
		}
	}

	return false
}

// FirstOfType returns the cause of type T nearest to err, narrowed to T.
// The second return is false when no cause matches.
func FirstOfType[T error](err error) (T, bool) {
	for c := next(err); c != nil; c = next(c) {
		if t, ok := c.(T); ok {
			return t, true
		}
	}

	var zero T

	return zero, false
}

// Get is shorthand for FirstOfType.
func Get[T error](err error) (T, bool) {
	return FirstOfType[T](err)
}

// LastOfType returns the cause of type T farthest from err, i.e. the match
// closest to the root cause. The second return is false when no cause
// matches.
func LastOfType[T error](err error) (T, bool) {
	var (
		last  T
		found bool
	)

	for c := next(err); c != nil; c = next(c) {
		if t, ok := c.(T); ok {
			last = t
			found = true
		}
	}

	return last, found
}

// AllOfType returns every cause of type T in traversal order, nearest first.
// The result is the matching subsequence of All(err), nil when nothing
// matches.
func AllOfType[T error](err error) []T {
	var matches []T

	for c := next(err); c != nil; c = next(c) {
		if t, ok := c.(T); ok {
			matches = append(matches, t)
		}
	}

	return matches
}
