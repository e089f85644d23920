// Package validate provides a fluent, generic validation chain: a value is
// wrapped once, tested by a sequence of predicate checks, and finally
// resolved by exactly one of two handlers, one for the valid outcome and one
// for the recorded failure.
//
// The chain replaces scattered nil guards and if-cascades with a declarative
// pipeline that still returns a usable value. Every check is tagged with a
// failure message and an optional business error code, nil values are caught
// automatically, and the terminal call always produces a result.
//
// # Architecture
//
// Two concrete chain kinds share one unexported core. Validator[T, U]
// transforms the validated value into a result; Acceptor[T] consumes it and
// returns nothing. The core tracks a validity flag and a single failure slot
// holding one (code, message) pair: the first failing check flips the flag,
// and any later failing check that is still allowed to run overwrites the
// slot. Under the FailFast option no predicate runs once the chain is
// invalid.
//
// Each check first looks at the wrapped value itself: a nil value records an
// automatic failure carrying NilValueMessage and the code set with NilCode,
// so chains never need an explicit leading nil guard. Values of non-nillable
// kinds (numbers, strings, structs) are always present; their zero values
// validate like any other value.
//
// The *_checks.go files supply a catalog of predicates and predicate
// factories, each named for the failing condition it detects, to be handed
// to On and OnIf. Not, All and Any compose them.
//
// # Usage
//
//	limit := validate.Of[int, int](requested).
//		On(validate.Negative[int], "limit must not be negative").
//		On(validate.Above(500), "limit too large", "ERR_LIMIT").
//		OnSuccess(func(v int) int { return v }).
//		OnFailure(func(_ int, _ string) int { return 100 })
//
// A derived property is validated with NotNil, and a check that only applies
// in some states is gated with OnIf:
//
//	resp := validate.Of[*Order, Response](order, validate.FailFast()).
//		NotNil(func(o *Order) any { return o.Customer }, "order has no customer", "ERR_NO_CUSTOMER").
//		On(func(o *Order) bool { return len(o.Items) == 0 }, "order is empty").
//		OnIf(
//			func(o *Order) bool { return o.Total <= 0 },
//			func(o *Order) bool { return o.Status == StatusPlaced },
//			"placed order must have a positive total",
//		).
//		OnSuccess(acceptOrder).
//		OnFailure(rejectOrder)
//
// The consumer-flavoured Acceptor is used when no result is needed:
//
//	validate.Accept(req).
//		On(func(r Request) bool { return validate.Blank(r.Name) }, "name is required").
//		OnSuccess(process).
//		OnFailure(func(_ Request, msg string) { log.Println(msg) })
//
// # Error Handling
//
// Validation failures are state, not errors: they never panic and surface
// only through the failure handler as the recorded message. Misuse of the
// API itself (an empty NilCode, a second OnSuccess on one instance, a
// terminal call without a success handler) panics with one of the package
// sentinels, keeping "invalid input" and "incorrect use of the validator"
// strictly apart. A correctly used chain never panics.
//
// # Performance Considerations
//
// A validator is a single small struct; checks evaluate eagerly as they are
// attached and allocate nothing. Nil detection costs one reflective kind
// switch per check. Validators are single-pass, single-owner objects: build,
// evaluate and discard them within one call, and do not share an instance
// across goroutines.
package validate
