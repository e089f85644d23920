package validate

// Predicates handed to On and OnIf describe failing conditions. The
// combinators below compose them; Not also flips a passing-sense predicate
// borrowed from elsewhere into the failing sense the chain expects.

// Not inverts pred.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// All reports true only when every predicate reports true.
func All[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, pred := range preds {
			if !pred(v) {
				return false
			}
		}
		return true
	}
}

// Any reports true when at least one predicate reports true. Combined with
// On it fails the chain on the first detected problem of a group.
func Any[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, pred := range preds {
			if pred(v) {
				return true
			}
		}
		return false
	}
}
