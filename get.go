package async

import "context"

// Get blocks the calling goroutine until a completes, then returns its
// outcome. It accepts any [Awaitable], not just this library's [Task].
//
// Get consumes a's single await: do not combine it with other consumers of
// the same awaitable.
func Get[T any](a Awaitable[T]) (T, error) {
	if !a.Ready() {
		var done Signal
		if a.Suspend(done.Set) {
			done.Wait()
		}
	}
	return a.Resume()
}

// GetContext is like [Get] but gives up when ctx is done, returning
// ctx.Err().
//
// Giving up abandons the awaitable: its single await has been spent on
// a continuation nobody listens to anymore, and its outcome, when it
// eventually arrives, is discarded.
func GetContext[T any](ctx context.Context, a Awaitable[T]) (T, error) {
	if !a.Ready() {
		var done Signal
		if a.Suspend(done.Set) {
			if err := done.WaitContext(ctx); err != nil {
				var zero T
				return zero, err
			}
		}
	}
	return a.Resume()
}
