package async

import (
	"runtime/debug"
	"weak"
)

// An Awaitable is any single-outcome operation that a consumer can rendezvous
// with: query it for readiness, register one continuation to run when it
// completes, and take its outcome exactly once.
//
// [Task] is the Awaitable of this library, but the adapter functions [Get],
// [GetContext], [Then] and [ToFuture] accept any implementation.
type Awaitable[T any] interface {
	// Ready reports whether the outcome is available.
	// Once Ready reports true, it never again reports false.
	Ready() bool

	// Suspend registers continuation to run when the outcome becomes
	// available, and reports whether it did.
	// A false return means the outcome is already available and
	// the caller should run the continuation itself, now.
	Suspend(continuation func()) bool

	// Resume takes the outcome.
	// It may be called exactly once, and only after Ready reports true.
	Resume() (T, error)
}

// Void is the result type of tasks that produce no value.
type Void = struct{}

// A Task is a handle to a pending or completed outcome of type T.
//
// A Task is created by [Run], by the Task method of a [CompletionSource],
// or by the combinators [WhenAll] and [WhenAny].
//
// A Task may be awaited at most once, by exactly one consumer: either
// suspend on it with Suspend/Resume (typically through [Get], [Then] or
// [ToFuture]), or pass it to code that does. A second await panics with
// [ErrAwaitedTwice]. Passing a Task by value hands over that right; do not
// keep using both copies.
//
// Dropping every handle to a task does not stop its producer: the producer
// runs to completion and its outcome is silently discarded, including any
// error. Consume the task if the error matters.
type Task[T any] struct {
	state *state[T]
}

// Ready reports whether the task's outcome is available.
// Once Ready reports true, it never again reports false.
func (t Task[T]) Ready() bool {
	return t.state.ready()
}

// Suspend registers continuation to run when the task completes, and reports
// whether it did. A false return means the task has already completed and
// the caller should proceed immediately instead; a nil continuation always
// returns false.
//
// The continuation runs synchronously on whatever goroutine completes
// the task. It must not block that goroutine for long, and a panic from it
// propagates there.
//
// Panics with [ErrAwaitedTwice] if the task has been suspended on before.
func (t Task[T]) Suspend(continuation func()) bool {
	return t.state.suspend(continuation)
}

// Resume takes the task's outcome: the produced value, or the error the
// producer failed with.
//
// Resume may be called only once, and only after Ready reports true;
// otherwise it panics with [ErrConsumedTwice] or [ErrNotReady] respectively.
func (t Task[T]) Resume() (T, error) {
	return t.state.resume()
}

// Run starts f on a new goroutine and returns a [Task] for its outcome.
//
// The task completes when f returns; a panic in f is captured into
// a [*PanicError] and carried through the task's error channel instead of
// crashing the goroutine.
//
// The goroutine holds only a weak reference to the task's shared state.
// If every handle to the task is dropped, the state may be collected and
// f's outcome, error or not, is silently discarded.
func Run[T any](f func() (T, error)) Task[T] {
	s := newState[T]()
	w := weak.Make(s)
	go produce(w, f)
	return Task[T]{state: s}
}

func produce[T any](w weak.Pointer[state[T]], f func() (T, error)) {
	v, err := protect(f)

	s := w.Value()
	if s == nil {
		// Every handle was dropped; the outcome has nowhere to go.
		return
	}

	if err != nil {
		s.slot.SetError(err)
	} else {
		s.slot.SetValue(v)
	}

	if resume := s.markReady(); resume != nil {
		// The consumer suspended first; run its continuation here,
		// on the producer's goroutine.
		resume()
	}
}

// protect runs f, converting a panic into a *PanicError.
func protect[T any](f func() (T, error)) (v T, err error) {
	ok := false
	defer func() {
		if ok {
			return
		}
		x := recover()
		if x == nil {
			panic("async: runtime.Goexit is not supported in a task body")
		}
		err = &PanicError{Value: x, Stack: debug.Stack()}
	}()
	v, err = f()
	ok = true
	return v, err
}
