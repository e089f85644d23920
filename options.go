package validate

// Option configures a chain during construction.
type Option func(*config)

type config struct {
	nilCode  string
	failFast bool
}

func defaultConfig() config {
	return config{nilCode: NoCode}
}

// FailFast stops the chain at the first recorded failure: predicates attached
// after that point are never evaluated. Without it every attached check runs,
// and each later failure overwrites the recorded one.
func FailFast() Option {
	return func(c *config) { c.failFast = true }
}

// NilCode sets the error code recorded when the validated value itself is
// nil. An empty code is API misuse, not a validation outcome, and panics with
// ErrEmptyNilCode before any chain state exists.
func NilCode(code string) Option {
	if code == "" {
		panic(ErrEmptyNilCode)
	}
	return func(c *config) { c.nilCode = code }
}
