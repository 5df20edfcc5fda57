package async

import "fmt"

// A PanicError is the error a [Task] completes with when its body panics.
// It carries the recovered panic value and the stack trace captured at
// the point of recovery, as returned by [runtime/debug.Stack].
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("async: task panicked: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error, and nil otherwise,
// so that errors.Is and errors.As see through recovered error panics.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
