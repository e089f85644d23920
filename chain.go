package validate

import "reflect"

// chain carries the state shared by every validator kind: the value under
// validation, the evaluation policy, and a single failure slot.
//
// The slot holds at most one (code, message) pair and every failing check
// overwrites it. When the chain keeps running after a failure the retained
// error is therefore the one from the last failing check in chain order, not
// the first. The slot is deliberately not a list; accumulating failures would
// change that observable behaviour.
type chain[T any] struct {
	value    T
	nilCode  string
	failFast bool

	errCode string
	errMsg  string
	valid   bool
}

func newChain[T any](value T, opts ...Option) chain[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return chain[T]{
		value:    value,
		nilCode:  cfg.nilCode,
		failFast: cfg.failFast,
		valid:    true,
	}
}

// checkValue records the nil-value failure when the value under validation is
// absent and nothing has failed yet. Every check calls it before its own
// predicate, which keeps nil handling uniform across the chain and ensures
// the automatic record happens at most once.
func (c *chain[T]) checkValue() {
	if c.valid && isNil(c.value) {
		c.setError(c.nilCode, NilValueMessage)
	}
}

// keepValidating reports whether the next predicate should run at all.
// Without fail-fast every attached check runs regardless of earlier failures.
func (c *chain[T]) keepValidating() bool {
	return !c.failFast || c.valid
}

// setError writes the failure slot unconditionally and marks the chain
// invalid. There is no transition back to valid.
func (c *chain[T]) setError(code, msg string) {
	c.errCode = code
	c.errMsg = msg
	c.valid = false
}

func (c *chain[T]) isValid() bool { return c.valid }

func (c *chain[T]) errorMessage() string { return c.errMsg }

// notNil, on and onIf are the shared bodies of the three check shapes. The
// concrete validator kinds wrap them in methods that return the validator
// itself, keeping the chain fluent.

func (c *chain[T]) notNil(mapper func(T) any, msg, code string) {
	c.checkValue()
	if c.keepValidating() && !isNil(c.value) && isNil(mapper(c.value)) {
		c.setError(code, msg)
	}
}

func (c *chain[T]) on(pred func(T) bool, msg, code string) {
	c.checkValue()
	if c.keepValidating() && pred(c.value) {
		c.setError(code, msg)
	}
}

func (c *chain[T]) onIf(pred, cond func(T) bool, msg, code string) {
	c.checkValue()
	if c.keepValidating() && cond(c.value) && pred(c.value) {
		c.setError(code, msg)
	}
}

// pickCode resolves the optional trailing error code of a check. Only the
// first element is consulted; omitting it records NoCode.
func pickCode(code []string) string {
	if len(code) > 0 {
		return code[0]
	}
	return NoCode
}

// isNil reports whether v is nil in the broad sense: an untyped nil or a nil
// value of a nillable kind. Values of non-nillable kinds are never nil, so a
// zero int or an empty string counts as present.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
