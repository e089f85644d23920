package validate

// EmptySlice reports a slice with no elements.
func EmptySlice[T any](s []T) bool {
	return len(s) == 0
}

// EmptyMap reports a map with no entries.
func EmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// FewerThan reports slices with fewer than min elements.
func FewerThan[T any](min int) func([]T) bool {
	return func(s []T) bool { return len(s) < min }
}

// MoreThan reports slices with more than max elements.
func MoreThan[T any](max int) func([]T) bool {
	return func(s []T) bool { return len(s) > max }
}
