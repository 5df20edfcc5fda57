package async

import "sync/atomic"

const (
	completionUnset uint32 = iota
	completionSetting
	completionSet
)

// A CompletionSource manufactures a [Task] that ordinary, non-task code can
// complete later, exactly once, from any goroutine: a timer callback,
// an I/O completion, a worker goroutine.
//
// Exactly one of the competing SetValue/SetError/TrySetValue/TrySetError
// calls across all goroutines completes the source; every other call panics
// with [ErrAlreadyCompleted] or returns false.
//
// A CompletionSource must not be copied after first use.
// To create one, use [NewCompletionSource].
type CompletionSource[T any] struct {
	state *state[T]
	flag  atomic.Uint32
}

// NewCompletionSource returns a new, uncompleted [CompletionSource].
func NewCompletionSource[T any]() *CompletionSource[T] {
	return &CompletionSource[T]{state: newState[T]()}
}

// Task returns a handle to the task this source completes.
//
// Every call returns a handle over the same underlying state. Task handles
// enforce their awaited-only-once contract per state, not per handle, so
// do not keep more than one live awaiting handle per source: the second
// consumer to suspend panics with [ErrAwaitedTwice].
func (cs *CompletionSource[T]) Task() Task[T] {
	return Task[T]{state: cs.state}
}

// SetValue completes the task with v.
//
// Panics with [ErrAlreadyCompleted] if the source has already been
// completed.
func (cs *CompletionSource[T]) SetValue(v T) {
	if !cs.TrySetValue(v) {
		panic(ErrAlreadyCompleted)
	}
}

// SetError completes the task with err.
//
// Panics with [ErrNilError] if err is nil, or with [ErrAlreadyCompleted] if
// the source has already been completed.
func (cs *CompletionSource[T]) SetError(err error) {
	if err == nil {
		panic(ErrNilError)
	}
	if !cs.TrySetError(err) {
		panic(ErrAlreadyCompleted)
	}
}

// TrySetValue completes the task with v and reports whether it did.
// It returns false if the source has already been completed, or another
// goroutine is completing it right now.
func (cs *CompletionSource[T]) TrySetValue(v T) bool {
	if !cs.flag.CompareAndSwap(completionUnset, completionSetting) {
		return false
	}
	cs.state.slot.SetValue(v)
	cs.flag.Store(completionSet)
	cs.complete()
	return true
}

// TrySetError completes the task with err and reports whether it did.
// It returns false if err is nil, the source has already been completed, or
// another goroutine is completing it right now.
func (cs *CompletionSource[T]) TrySetError(err error) bool {
	if err == nil {
		return false
	}
	if !cs.flag.CompareAndSwap(completionUnset, completionSetting) {
		return false
	}
	cs.state.slot.SetError(err)
	cs.flag.Store(completionSet)
	cs.complete()
	return true
}

// complete announces readiness and, if a consumer has already suspended,
// runs its continuation synchronously on the calling goroutine.
//
// A panic from that continuation is deliberately not recovered: there is no
// well-defined recovery point inside a producer's completion call, so it
// propagates out of the setter on the producer's goroutine and, unless some
// caller up the stack recovers it, ends the process.
func (cs *CompletionSource[T]) complete() {
	if resume := cs.state.markReady(); resume != nil {
		resume()
	}
}
