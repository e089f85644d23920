package validate

// Numeric constrains the numeric checks to Go's built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Zero reports the zero value of a numeric type.
func Zero[T Numeric](v T) bool {
	var zero T
	return v == zero
}

// Negative reports values below zero.
func Negative[T Numeric](v T) bool {
	return v < 0
}

// Below reports values smaller than min.
func Below[T Numeric](min T) func(T) bool {
	return func(v T) bool { return v < min }
}

// Above reports values greater than max.
func Above[T Numeric](max T) func(T) bool {
	return func(v T) bool { return v > max }
}

// Outside reports values not within the inclusive [min, max] range.
func Outside[T Numeric](min, max T) func(T) bool {
	return func(v T) bool { return v < min || v > max }
}
