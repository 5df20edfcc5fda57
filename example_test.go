package async_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/awaitly/async"
)

func Example() {
	// Start a producer on its own goroutine and obtain a handle to its
	// eventual outcome.
	task := async.Run(func() (int, error) {
		time.Sleep(10 * time.Millisecond) // Pretend to work.
		return 6 * 7, nil
	})

	// Block until the producer finishes. Success and failure arrive
	// through the same two-value return.
	v, err := async.Get(task)
	fmt.Println(v, err)

	// Output:
	// 42 <nil>
}

func ExampleCompletionSource() {
	// A CompletionSource lets ordinary callback-style code complete
	// a task. Here a timer plays the role of an I/O completion.
	cs := async.NewCompletionSource[string]()

	time.AfterFunc(10*time.Millisecond, func() {
		cs.SetValue("done")
	})

	v, err := async.Get(cs.Task())
	fmt.Println(v, err)

	// A source completes exactly once; later attempts are refused.
	fmt.Println(cs.TrySetValue("too late"))

	// Output:
	// done <nil>
	// false
}

func ExampleThen() {
	cs := async.NewCompletionSource[int]()

	// Register a callback instead of blocking. It runs on whatever
	// goroutine completes the source; here, this one.
	async.Then(cs.Task(), func(r *async.Result[int]) {
		v, err := r.Get()
		fmt.Println("got", v, err)
	})

	cs.SetValue(1)

	// Output:
	// got 1 <nil>
}

func ExampleToFuture() {
	task := async.Run(func() (int, error) {
		return 0, errors.New("the disk caught fire")
	})

	// Bridge to a channel-backed future for select-oriented code.
	f := async.ToFuture(task)

	<-f.Done()
	_, err := f.Get()
	fmt.Println(err)

	// Output:
	// the disk caught fire
}

func ExampleWhenAll() {
	squares := make([]async.Task[int], 4)
	for i := range squares {
		squares[i] = async.Run(func() (int, error) {
			return i * i, nil
		})
	}

	// One task standing for all of them, values in argument order no
	// matter which producer finishes first.
	vs, err := async.Get(async.WhenAll(squares...))
	fmt.Println(vs, err)

	// Output:
	// [0 1 4 9] <nil>
}

func ExampleSignal() {
	var ready async.Signal

	go func() {
		time.Sleep(10 * time.Millisecond)
		ready.Set()
	}()

	fmt.Println(ready.IsSet())
	fmt.Println(ready.WaitFor(5 * time.Second))

	// Output:
	// false
	// true
}
