package async

type outcome uint8

const (
	outcomeUnset outcome = iota
	outcomeValue
	outcomeError
)

// A Result is a one-shot container for the outcome of an asynchronous
// operation: either a value or a non-nil error, whichever is set first.
//
// A Result is set at most once, with SetValue or SetError, and taken at most
// once, with Get. Violating either contract is a bug in the calling code and
// panics immediately.
//
// A Result is not safe for concurrent use by itself. The writer and
// the reader must be serialized externally; within this library, the task
// state machine provides that serialization.
//
// The zero Result is an unset Result ready for use.
type Result[T any] struct {
	outcome outcome
	value   T
	err     error
}

// SetValue stores v as the outcome.
//
// Panics with [ErrResultAlreadySet] if the outcome has already been set.
func (r *Result[T]) SetValue(v T) {
	if r.outcome != outcomeUnset {
		panic(ErrResultAlreadySet)
	}
	r.value = v
	r.outcome = outcomeValue
}

// SetError stores err as the outcome.
//
// Panics with [ErrNilError] if err is nil, or with [ErrResultAlreadySet] if
// the outcome has already been set.
func (r *Result[T]) SetError(err error) {
	if err == nil {
		panic(ErrNilError)
	}
	if r.outcome != outcomeUnset {
		panic(ErrResultAlreadySet)
	}
	r.err = err
	r.outcome = outcomeError
}

// Get takes the outcome out of r, leaving r unset.
// The stored value (or error) is moved out, not copied: after Get returns,
// r no longer references it.
//
// Panics with [ErrNoResult] if the outcome is unset, or has already been
// taken. This must never happen in correct usage.
func (r *Result[T]) Get() (T, error) {
	switch r.outcome {
	case outcomeValue:
		v := r.value
		var zero T
		r.value = zero
		r.outcome = outcomeUnset
		return v, nil
	case outcomeError:
		err := r.err
		r.err = nil
		r.outcome = outcomeUnset
		var zero T
		return zero, err
	default:
		panic(ErrNoResult)
	}
}
