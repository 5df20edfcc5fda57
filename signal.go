package async

import (
	"context"
	"sync"
	"time"
)

// A Signal is a one-shot flag that any number of goroutines can wait on and
// one goroutine can set, waking all of them. Once set, a Signal stays set.
//
// A Signal is what turns the push-driven completion of an [Awaitable] into
// something a goroutine can block on; [Get] uses one internally. It is also
// useful on its own wherever a level-triggered "this has happened" flag is
// needed across goroutines.
//
// A Signal must not be copied after first use.
// The zero Signal is unset and ready for use.
type Signal struct {
	initOnce sync.Once
	setOnce  sync.Once
	done     chan struct{}
}

func (s *Signal) init() {
	s.initOnce.Do(func() { s.done = make(chan struct{}) })
}

// Set sets the signal and wakes every waiter, current and future.
// Calling Set again is a no-op.
func (s *Signal) Set() {
	s.init()
	s.setOnce.Do(func() { close(s.done) })
}

// IsSet reports whether the signal has been set.
func (s *Signal) IsSet() bool {
	s.init()
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the signal is set.
// If the signal is already set, Wait returns immediately.
func (s *Signal) Wait() {
	s.init()
	<-s.done
}

// WaitFor blocks until the signal is set, or d has elapsed, and reports
// whether the signal was set in time.
func (s *Signal) WaitFor(d time.Duration) bool {
	s.init()
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.done:
		return true
	case <-t.C:
		// The signal may have been set at the same instant the timer
		// fired; do not report a timeout if it was.
		return s.IsSet()
	}
}

// WaitContext blocks until the signal is set or ctx is done, returning nil
// in the former case and ctx.Err() in the latter.
func (s *Signal) WaitContext(ctx context.Context) error {
	s.init()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed when the signal is set, for use in
// select statements.
func (s *Signal) Done() <-chan struct{} {
	s.init()
	return s.done
}
