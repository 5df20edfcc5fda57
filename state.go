package async

import "sync/atomic"

// A completion is a cell that the phase field of a task state points at.
// A registered continuation is always wrapped in a freshly allocated
// completion, so it can never alias one of the three reserved cells below.
type completion struct {
	resume func()
}

// Reserved phase cells. Their identities, not their contents, encode
// the logical state of a task.
var (
	cellRunning = new(completion) // producer still working
	cellReady   = new(completion) // outcome stored, not yet consumed
	cellDone    = new(completion) // outcome consumed
)

// A state is the shared coordination object linking one producer to at most
// one consumer. It consists of a one-shot result slot and a single atomic
// cell, phase, that does double duty as state tag and continuation holder:
//
//   - cellRunning: the producer has not finished yet.
//   - cellReady: the outcome is stored in slot and safe to take.
//   - cellDone: the outcome has been taken.
//   - anything else: a *completion registered by a suspended consumer,
//     waiting for the producer to discover and run it.
//
// Transitions are monotonic: running moves to ready, either directly or
// after a continuation has been registered, and ready moves to done;
// done is terminal.
//
// All transitions use compare-and-swap or exchange on phase; phase is also
// the synchronization edge that makes the producer's slot write visible to
// the consumer's slot read. No locks, no polling.
type state[T any] struct {
	phase atomic.Pointer[completion]
	slot  Result[T]
}

func newState[T any]() *state[T] {
	s := new(state[T])
	s.phase.Store(cellRunning)
	return s
}

func isContinuation(c *completion) bool {
	return c != cellRunning && c != cellReady && c != cellDone
}

// markReady announces that the producer has stored the outcome in slot.
// It must be called exactly once, after the slot write.
// If a consumer has already suspended, markReady returns its continuation
// for the caller to run; otherwise it returns nil.
func (s *state[T]) markReady() func() {
	prev := s.phase.Swap(cellReady)
	if prev == cellDone {
		// The consumer cannot have taken an outcome that was never
		// announced.
		panic("async: internal error: task marked ready after done")
	}
	if isContinuation(prev) {
		return prev.resume
	}
	return nil
}

// ready reports whether the outcome has been stored (or already taken).
// Once ready returns true, it never again returns false.
func (s *state[T]) ready() bool {
	p := s.phase.Load()
	return p == cellReady || p == cellDone
}

// suspend registers continuation to run when the producer finishes, and
// reports whether it did. A false return means the producer has already
// finished and the caller should proceed immediately instead.
//
// A nil continuation means there is nothing to run on resumption; it is
// treated as "proceed immediately" without touching the phase cell, so
// the reserved cells stay unambiguous.
//
// Panics with [ErrAwaitedTwice] if a continuation has been registered
// before, or the outcome has already been taken.
func (s *state[T]) suspend(continuation func()) bool {
	if continuation == nil {
		return false
	}
	c := &completion{resume: continuation}
	if !s.phase.CompareAndSwap(cellRunning, c) {
		if s.phase.Load() != cellReady {
			panic(ErrAwaitedTwice)
		}
		return false
	}
	return true
}

// resume takes the outcome. It may be called only once, and only after
// ready reports true; otherwise it panics with [ErrConsumedTwice] or
// [ErrNotReady] respectively.
func (s *state[T]) resume() (T, error) {
	if !s.phase.CompareAndSwap(cellReady, cellDone) {
		if s.phase.Load() == cellDone {
			panic(ErrConsumedTwice)
		}
		panic(ErrNotReady)
	}
	return s.slot.Get()
}
