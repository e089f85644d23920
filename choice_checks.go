package validate

import "slices"

// OneOf reports values found in the forbidden set.
func OneOf[T comparable](forbidden ...T) func(T) bool {
	return func(v T) bool { return slices.Contains(forbidden, v) }
}

// NotOneOf reports values missing from the allowed set.
func NotOneOf[T comparable](allowed ...T) func(T) bool {
	return func(v T) bool { return !slices.Contains(allowed, v) }
}
