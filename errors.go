package async

import "errors"

var (
	// ErrAlreadyCompleted is the panic value of a [CompletionSource] setter
	// called after the source has already been completed.
	ErrAlreadyCompleted = errors.New("async: completion source already completed")

	// ErrNilError is the panic value of [CompletionSource.SetError] when
	// called with a nil error. A completed task must carry either a value
	// or a non-nil error; there is no third option.
	ErrNilError = errors.New("async: nil error")

	// ErrAwaitedTwice is the panic value of a second call to the Suspend
	// method of a [Task] after a first successful one.
	// A Task may be awaited only once.
	ErrAwaitedTwice = errors.New("async: task may be awaited only once")

	// ErrConsumedTwice is the panic value of a second call to the Resume
	// method of a [Task] after a first successful one.
	// A Task's outcome may be consumed only once.
	ErrConsumedTwice = errors.New("async: task outcome already consumed")

	// ErrNotReady is the panic value of the Resume method of a [Task] when
	// called before the Ready method reports true.
	ErrNotReady = errors.New("async: task not yet ready")

	// ErrNoResult is the panic value of [Result.Get] when the result is
	// unset, or has already been taken.
	// It always indicates a bug in the calling code.
	ErrNoResult = errors.New("async: no result")

	// ErrResultAlreadySet is the panic value of [Result.SetValue] and
	// [Result.SetError] when the result has already been set.
	// It always indicates a bug in the calling code.
	ErrResultAlreadySet = errors.New("async: result already set")

	// ErrCanceled is a distinguished error for reporting cancellation
	// through a task's failure channel.
	// This library attaches no policy to it; producers that race a task
	// against a timeout or an external cancellation request can complete
	// the task with ErrCanceled, and consumers can test for it with
	// errors.Is.
	ErrCanceled = errors.New("async: task canceled")
)
