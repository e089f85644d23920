package validate

import "errors"

const (
	// NoCode is recorded when a check supplies no business error code. It is
	// a dedicated sentinel rather than an absent value, so a chain can tell
	// "no code given" apart from a code-bearing failure.
	NoCode = ""

	// NilValueMessage is the failure message recorded automatically when the
	// validated value itself is nil.
	NilValueMessage = "value is nil"
)

// Misuse of the validator API panics with one of these sentinels. Validation
// failures are never signalled this way: they stay in the chain state and
// reach the caller only through the failure handler.
var (
	ErrEmptyNilCode            = errors.New("validate: nil-value error code must not be empty")
	ErrDuplicateSuccessHandler = errors.New("validate: success handler already assigned")
	ErrMissingSuccessHandler   = errors.New("validate: success handler must be assigned before OnFailure")
)
