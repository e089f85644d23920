package validate

// Acceptor is the consumer-flavoured sibling of Validator: the chain works
// the same way, but the terminal handlers consume the value instead of
// transforming it into a result.
type Acceptor[T any] struct {
	chain[T]
	success func(T)
}

// Accept returns an Acceptor wrapping value. Unlike Of, the type parameter is
// inferred from the argument.
func Accept[T any](value T, opts ...Option) *Acceptor[T] {
	return &Acceptor[T]{chain: newChain(value, opts...)}
}

// The chaining surface mirrors Validator's.

func (a *Acceptor[T]) NotNil(mapper func(T) any, msg string, code ...string) *Acceptor[T] {
	a.notNil(mapper, msg, pickCode(code))
	return a
}

func (a *Acceptor[T]) On(pred func(T) bool, msg string, code ...string) *Acceptor[T] {
	a.on(pred, msg, pickCode(code))
	return a
}

func (a *Acceptor[T]) OnIf(pred, cond func(T) bool, msg string, code ...string) *Acceptor[T] {
	a.onIf(pred, cond, msg, pickCode(code))
	return a
}

// OnSuccess binds the consumer invoked with the value when the chain ends
// valid. Binding a second consumer panics with ErrDuplicateSuccessHandler.
func (a *Acceptor[T]) OnSuccess(fn func(T)) *Acceptor[T] {
	if a.success != nil {
		panic(ErrDuplicateSuccessHandler)
	}
	a.success = fn
	return a
}

// OnFailure terminates the chain, invoking exactly one of the two consumers.
// Panics with ErrMissingSuccessHandler when no success consumer was bound.
func (a *Acceptor[T]) OnFailure(fn func(T, string)) {
	if a.success == nil {
		panic(ErrMissingSuccessHandler)
	}
	a.checkValue()
	if a.isValid() {
		a.success(a.value)
		return
	}
	fn(a.value, a.errorMessage())
}
