package recovery

import "errors"

// Input and confirmation failures. Every one leaves the session untouched.
var (
	ErrNotAnInteger          = errors.New("input is not a whole number")
	ErrNotAPowerOfTwoInRange = errors.New("input is not a power of two between 1 and 1024")
	ErrDuplicateInput        = errors.New("input already added for this word")
	ErrNoInputYet            = errors.New("no input added for this word")
	ErrSumDoesNotResolve     = errors.New("sum does not correspond to a word")

	ErrInvalidLength = errors.New("phrase length must be 12, 18 or 24")
	ErrNotRecovering = errors.New("session is not recovering a word")
)

// Kind returns a stable snake_case code for a session error, or "" when err
// did not come from this package.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotAnInteger):
		return "not_an_integer"
	case errors.Is(err, ErrNotAPowerOfTwoInRange):
		return "not_a_power_of_two"
	case errors.Is(err, ErrDuplicateInput):
		return "duplicate_input"
	case errors.Is(err, ErrNoInputYet):
		return "no_input_yet"
	case errors.Is(err, ErrSumDoesNotResolve):
		return "sum_does_not_resolve"
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrNotRecovering):
		return "not_recovering"
	default:
		return ""
	}
}
