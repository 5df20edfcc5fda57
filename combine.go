package async

import "sync/atomic"

// WhenAll returns a task that completes with the values of all the given
// tasks, in argument order, once every one of them has completed.
// If any task fails, the returned task completes early with the first
// failure observed; the remaining outcomes are discarded.
//
// WhenAll consumes each task's single await.
// With no arguments, WhenAll returns an already-completed task with a nil
// slice.
func WhenAll[T any](s ...Task[T]) Task[[]T] {
	cs := NewCompletionSource[[]T]()
	if len(s) == 0 {
		cs.SetValue(nil)
		return cs.Task()
	}

	values := make([]T, len(s))
	var pending atomic.Int64
	pending.Store(int64(len(s)))

	for i, t := range s {
		Then(t, func(r *Result[T]) {
			v, err := r.Get()
			if err != nil {
				cs.TrySetError(err)
				return
			}
			values[i] = v
			// The final decrement happens after every slot write,
			// so values is fully populated when it is published.
			if pending.Add(-1) == 0 {
				cs.TrySetValue(values)
			}
		})
	}

	return cs.Task()
}

// WhenAny returns a task that completes with the outcome, value or error,
// of whichever of the given tasks completes first. The other outcomes are
// discarded.
//
// WhenAny consumes each task's single await.
// With no arguments there would be nothing to complete the returned task,
// so WhenAny panics.
func WhenAny[T any](s ...Task[T]) Task[T] {
	if len(s) == 0 {
		panic("async: WhenAny of no tasks")
	}

	cs := NewCompletionSource[T]()

	for _, t := range s {
		Then(t, func(r *Result[T]) {
			if v, err := r.Get(); err != nil {
				cs.TrySetError(err)
			} else {
				cs.TrySetValue(v)
			}
		})
	}

	return cs.Task()
}
