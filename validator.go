package validate

// Validator checks a value of type T and resolves the chain into a result of
// type U. Checks are attached fluently, then OnSuccess binds the transform
// applied to a valid value and OnFailure terminates the chain, invoking
// exactly one of the two handlers and returning its result.
type Validator[T any, U any] struct {
	chain[T]
	success func(T) U
}

// Of returns a Validator wrapping value. By default the chain keeps
// evaluating attached checks after a failure and tags an automatic nil-value
// failure with NoCode; both policies are set at construction with the
// FailFast and NilCode options and are fixed for the validator's lifetime.
//
// The result type U cannot be inferred from the arguments, so both type
// parameters are named at the call site:
//
//	v := validate.Of[string, int](input)
func Of[T any, U any](value T, opts ...Option) *Validator[T, U] {
	return &Validator[T, U]{chain: newChain(value, opts...)}
}

// NotNil fails the chain when mapper returns a nil derived value. The mapper
// is consulted only while the validated value itself is present.
func (v *Validator[T, U]) NotNil(mapper func(T) any, msg string, code ...string) *Validator[T, U] {
	v.notNil(mapper, msg, pickCode(code))
	return v
}

// On fails the chain when pred reports true. The predicate describes the
// failing condition, not the passing one.
func (v *Validator[T, U]) On(pred func(T) bool, msg string, code ...string) *Validator[T, U] {
	v.on(pred, msg, pickCode(code))
	return v
}

// OnIf behaves like On but consults pred only while cond reports true,
// letting a check be skipped entirely when it does not apply.
func (v *Validator[T, U]) OnIf(pred, cond func(T) bool, msg string, code ...string) *Validator[T, U] {
	v.onIf(pred, cond, msg, pickCode(code))
	return v
}

// OnSuccess binds the transform applied to the value when the chain ends
// valid. A validator takes exactly one success transform; binding a second
// panics with ErrDuplicateSuccessHandler.
func (v *Validator[T, U]) OnSuccess(fn func(T) U) *Validator[T, U] {
	if v.success != nil {
		panic(ErrDuplicateSuccessHandler)
	}
	v.success = fn
	return v
}

// OnFailure terminates the chain and returns its result: the success
// transform of the value when the chain is still valid, otherwise fn applied
// to the value and the recorded failure message. Exactly one of the two
// handlers runs. A nil value that slipped past an empty chain is still caught
// here.
//
// Panics with ErrMissingSuccessHandler when no success transform was bound.
func (v *Validator[T, U]) OnFailure(fn func(T, string) U) U {
	if v.success == nil {
		panic(ErrMissingSuccessHandler)
	}
	v.checkValue()
	if v.isValid() {
		return v.success(v.value)
	}
	return fn(v.value, v.errorMessage())
}
