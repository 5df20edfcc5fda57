package async_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/awaitly/async"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhenAll(t *testing.T) {
	sources := make([]*async.CompletionSource[int], 4)
	tasks := make([]async.Task[int], 4)
	for i := range sources {
		sources[i] = async.NewCompletionSource[int]()
		tasks[i] = sources[i].Task()
	}

	all := async.WhenAll(tasks...)
	require.False(t, all.Ready())

	// Complete out of order; values still come back in argument order.
	for _, i := range []int{2, 0, 3, 1} {
		go sources[i].SetValue(i * 10)
	}

	vs, err := async.Get(all)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 30}, vs)
}

func TestWhenAllError(t *testing.T) {
	errBoom := errors.New("boom")

	a := async.NewCompletionSource[int]()
	b := async.NewCompletionSource[int]()

	all := async.WhenAll(a.Task(), b.Task())

	a.SetError(errBoom)

	// The combined task fails as soon as any input does; b never
	// completes and that must not matter.
	_, err := async.Get(all)
	assert.Same(t, errBoom, err)
}

func TestWhenAllEmpty(t *testing.T) {
	all := async.WhenAll[int]()
	require.True(t, all.Ready())

	vs, err := all.Resume()
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestWhenAny(t *testing.T) {
	fast := async.NewCompletionSource[string]()
	slow := async.NewCompletionSource[string]()

	any := async.WhenAny(fast.Task(), slow.Task())

	fast.SetValue("fast")

	v, err := async.Get(any)
	require.NoError(t, err)
	assert.Equal(t, "fast", v)

	// The loser's outcome is discarded without fuss.
	slow.SetValue("slow")
}

func TestWhenAnyError(t *testing.T) {
	errBoom := errors.New("boom")

	a := async.NewCompletionSource[int]()
	b := async.NewCompletionSource[int]()

	any := async.WhenAny(a.Task(), b.Task())

	a.SetError(errBoom)

	_, err := async.Get(any)
	assert.Same(t, errBoom, err)
}

func TestWhenAnyEmpty(t *testing.T) {
	assert.Panics(t, func() { async.WhenAny[int]() })
}

func TestWhenAllOfRunTasks(t *testing.T) {
	tasks := make([]async.Task[int], 8)
	for i := range tasks {
		tasks[i] = async.Run(func() (int, error) {
			return i * i, nil
		})
	}

	vs, err := async.Get(async.WhenAll(tasks...))
	require.NoError(t, err)
	for i, v := range vs {
		assert.Equal(t, i*i, v, fmt.Sprintf("task %d", i))
	}
}
