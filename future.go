package async

// A Future is a channel-backed view of an [Awaitable]'s outcome, for code
// written around select loops and futures rather than around this library's
// suspend/resume protocol. To create one, use [ToFuture].
type Future[T any] struct {
	done chan struct{}
	res  *Result[T]
}

// ToFuture bridges a to a [*Future]. It accepts any [Awaitable] and
// consumes its single await: do not combine it with other consumers of
// the same awaitable.
func ToFuture[T any](a Awaitable[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	Then(a, func(r *Result[T]) {
		f.res = r
		close(f.done)
	})
	return f
}

// Done returns a channel that is closed when the future completes, for use
// in select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get blocks until the future completes, then takes its outcome: the value,
// or the same error the underlying awaitable would have returned.
// Get may be called only once; a second call panics with [ErrNoResult].
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.res.Get()
}

// TryGet is the non-blocking variant of Get: if the future has completed,
// it takes the outcome and reports true; otherwise it reports false without
// waiting.
func (f *Future[T]) TryGet() (v T, ok bool, err error) {
	select {
	case <-f.done:
		v, err = f.res.Get()
		return v, true, err
	default:
		return v, false, nil
	}
}
